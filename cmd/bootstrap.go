package cmd

import (
	"fmt"

	"room-furnisher/core/config"
	"room-furnisher/core/database"
	"room-furnisher/core/logger"
	"room-furnisher/core/storage"
	"room-furnisher/feature/furnishing"
	"room-furnisher/feature/furnishing/modelhost"
	"room-furnisher/feature/furnishing/source"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the shared wiring of every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// bootstrap loads configuration and opens connections. The database is
// optional unless requireDB is set.
func bootstrap(requireDB bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Server.IsValidUnits() {
		return nil, fmt.Errorf("unsupported units %q", cfg.Server.Units)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Debug("Connected to building model database", zap.String("driver", cfg.Database.Driver))
	}

	// The client does not dial until first use.
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	rt.store = store

	return rt, nil
}

func (rt *runtime) source() (source.Source, error) {
	return source.Open(rt.cfg.Furnishing.Source, source.Deps{
		Storage: rt.store,
		Bucket:  rt.cfg.Storage.Bucket,
		DB:      rt.db,
	})
}

func (rt *runtime) model() *modelhost.Model {
	if rt.db == nil {
		return nil
	}
	return modelhost.New(rt.db, rt.logger)
}

func (rt *runtime) service() (*furnishing.Service, error) {
	src, err := rt.source()
	if err != nil {
		return nil, err
	}
	return furnishing.NewService(src, rt.model(), rt.cfg.Furnishing.Placement,
		rt.cfg.Furnishing.Source.CacheTTL(), rt.cfg.Server.Units, rt.logger), nil
}
