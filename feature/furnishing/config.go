package furnishing

import (
	"room-furnisher/feature/furnishing/placement"
	"room-furnisher/feature/furnishing/source"
)

// Config holds the furnishing feature settings.
type Config struct {
	// Enabled toggles the HTTP routes of the feature.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Source selects where the furniture tables come from.
	Source source.Config `mapstructure:"source"`
	// Placement names the room parameters and the unit of work.
	Placement placement.Config `mapstructure:"placement"`
}
