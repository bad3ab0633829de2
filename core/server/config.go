package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Units is the length unit of room reference points (feet, meters).
	Units string `mapstructure:"units" default:"feet"`
}

const (
	UnitsFeet   = "feet"
	UnitsMeters = "meters"
)

// IsValidUnits checks if the configured length unit is supported.
func (c Config) IsValidUnits() bool {
	switch c.Units {
	case UnitsFeet, UnitsMeters:
		return true
	default:
		return false
	}
}
