package placement

// Config holds the building model names a run reads and writes.
type Config struct {
	// SetAttribute is the room parameter holding the furniture-set code.
	SetAttribute string `mapstructure:"set_attribute" default:"Furniture Set"`
	// CountAttribute is the room parameter receiving the set's item count.
	CountAttribute string `mapstructure:"count_attribute" default:"Furniture Count"`
	// UnitOfWorkName labels the unit of work in the host.
	UnitOfWorkName string `mapstructure:"unit_of_work_name" default:"Move in furniture"`
}

// DefaultConfig returns the names used by the furnishing templates.
func DefaultConfig() Config {
	return Config{
		SetAttribute:   "Furniture Set",
		CountAttribute: "Furniture Count",
		UnitOfWorkName: "Move in furniture",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SetAttribute == "" {
		c.SetAttribute = d.SetAttribute
	}
	if c.CountAttribute == "" {
		c.CountAttribute = d.CountAttribute
	}
	if c.UnitOfWorkName == "" {
		c.UnitOfWorkName = d.UnitOfWorkName
	}
	return c
}
