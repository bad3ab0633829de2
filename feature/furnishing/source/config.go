package source

import (
	"fmt"
	"time"

	"room-furnisher/core/storage"

	"gorm.io/gorm"
)

const (
	KindBuiltin  = "builtin"
	KindFile     = "file"
	KindStorage  = "storage"
	KindDatabase = "database"
)

// Config selects and configures the table source.
type Config struct {
	// Kind is one of builtin, file, storage, database.
	Kind string `mapstructure:"kind" default:"builtin"`
	// File is the YAML document read by the file source.
	File string `mapstructure:"file" default:"furnishing.yaml"`
	// TypesObject is the furniture types CSV object of the storage source.
	// Empty selects DefaultTypesObject.
	TypesObject string `mapstructure:"types_object" default:""`
	// SetsObject is the furniture sets CSV object of the storage source.
	// Empty selects DefaultSetsObject.
	SetsObject string `mapstructure:"sets_object" default:""`
	// CacheTTLSeconds is how long parsed tables are reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Deps are the connections a source may need. Either may be nil when the
// configured kind does not use it.
type Deps struct {
	Storage storage.Client
	Bucket  string
	DB      *gorm.DB
}

// Open returns the source selected by cfg.Kind.
func Open(cfg Config, deps Deps) (Source, error) {
	switch cfg.Kind {
	case KindBuiltin, "":
		return Builtin(), nil
	case KindFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("source %q requires a file path", cfg.Kind)
		}
		return NewFile(cfg.File), nil
	case KindStorage:
		if deps.Storage == nil {
			return nil, fmt.Errorf("source %q requires a storage client", cfg.Kind)
		}
		return NewStorage(deps.Storage, deps.Bucket, cfg.TypesObject, cfg.SetsObject), nil
	case KindDatabase:
		if deps.DB == nil {
			return nil, fmt.Errorf("source %q requires a database connection", cfg.Kind)
		}
		return NewDatabase(deps.DB), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
