package furnishing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"room-furnisher/feature/furnishing/catalog"
	"room-furnisher/feature/furnishing/modelhost"
	"room-furnisher/feature/furnishing/placement"
	"room-furnisher/feature/furnishing/source"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoModel is returned when an operation needs the building model but the
// service was created without one.
var ErrNoModel = errors.New("building model not available")

// Service handles furnishing operations.
type Service struct {
	src      source.Source
	model    *modelhost.Model
	engine   *placement.Engine
	cfg      placement.Config
	cacheTTL time.Duration
	units    string
	logger   *zap.Logger

	mu       sync.RWMutex
	tables   *source.Tables
	loadedAt time.Time
	sf       singleflight.Group

	runMu sync.Mutex
}

// NewService creates a new furnishing service. cacheTTL of zero reloads the
// tables on every call. model may be nil for catalog-only use.
func NewService(src source.Source, model *modelhost.Model, cfg placement.Config, cacheTTL time.Duration, units string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		src:      src,
		model:    model,
		cfg:      cfg,
		cacheTTL: cacheTTL,
		units:    units,
		logger:   logger,
	}
	if model != nil {
		s.engine = placement.NewEngine(model, cfg, logger)
	}
	return s
}

// Tables returns the parsed tables, reusing a cached copy while it is fresh.
// Concurrent callers share one load. A caller whose ctx ends stops waiting,
// but the shared load keeps running for the others.
func (s *Service) Tables(ctx context.Context) (*source.Tables, error) {
	if tables, ok := s.cached(); ok {
		return tables, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(s.src.Name(), func() (any, error) {
		// Another flight may have finished between the check above and this one
		if tables, ok := s.cached(); ok {
			return tables, nil
		}
		loaded, err := source.Load(loadCtx, s.src)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.tables = loaded
		s.loadedAt = time.Now()
		s.mu.Unlock()

		s.logger.Debug("Furniture tables loaded",
			zap.String("source", loaded.Source),
			zap.Int("types", loaded.Catalog.Len()),
			zap.Int("sets", loaded.Sets.Len()),
		)
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load furniture tables: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("load furniture tables: %w", res.Err)
		}
		return res.Val.(*source.Tables), nil
	}
}

func (s *Service) cached() (*source.Tables, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil || s.cacheTTL <= 0 || time.Since(s.loadedAt) >= s.cacheTTL {
		return nil, false
	}
	return s.tables, true
}

// Catalog returns the catalog entries in table order.
func (s *Service) Catalog(ctx context.Context) ([]catalog.ItemDescriptor, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}
	return tables.Catalog.Items(), nil
}

// Sets returns the set definitions in table order.
func (s *Service) Sets(ctx context.Context) ([]catalog.SetDefinition, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}
	return tables.Sets.Sets(), nil
}

// ExpandSet resolves every set with the given code against the catalog.
// It returns an empty slice when no set has the code.
func (s *Service) ExpandSet(ctx context.Context, code string) ([]SetExpansion, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}

	matches := tables.Sets.Match(code)
	out := make([]SetExpansion, 0, len(matches))
	for _, set := range matches {
		exp := SetExpansion{Code: set.Code, RoomType: set.RoomType, ItemCount: set.ItemCount()}
		for _, name := range set.Items {
			entry := ExpandedItem{Name: strings.TrimSpace(name)}
			if d, ok := tables.Catalog.Lookup(name); ok {
				entry.FamilyName = d.FamilyName
				entry.TypeName = d.TypeName
				entry.InCatalog = true
			} else if suggestion, ok := tables.Catalog.Suggest(name); ok {
				entry.Suggestion = suggestion
			}
			exp.Items = append(exp.Items, entry)
		}
		out = append(out, exp)
	}
	return out, nil
}

// Rooms lists the rooms of the model with their furnishing parameters.
func (s *Service) Rooms(ctx context.Context) ([]modelhost.RoomSummary, error) {
	if s.model == nil {
		return nil, ErrNoModel
	}
	return s.model.Rooms(ctx, s.cfg.SetAttribute, s.cfg.CountAttribute)
}

// Furnish runs the placement engine over every room of the model.
// Runs are serialised.
func (s *Service) Furnish(ctx context.Context, dryRun bool) (*RunReport, error) {
	if s.model == nil {
		return nil, ErrNoModel
	}
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()

	started := time.Now()
	result, err := s.engine.Run(ctx, tables.Catalog, tables.Sets, placement.Options{DryRun: dryRun})
	if err != nil {
		s.logger.Error("Furnishing run failed", zap.String("source", tables.Source), zap.Error(err))
		return nil, err
	}

	report := &RunReport{
		Result:        *result,
		Source:        tables.Source,
		Units:         s.units,
		GeneratedAt:   started.UTC().Format(time.RFC3339),
		ExecutionTime: time.Since(started).String(),
	}
	for _, loc := range result.Locations {
		if loc.Status == placement.StatusPlaced {
			report.RoomsFurnished++
		}
	}

	s.logger.Info("Furnishing run finished",
		zap.String("source", tables.Source),
		zap.Bool("dry_run", dryRun),
		zap.Int("rooms", len(result.Locations)),
		zap.Int("rooms_furnished", report.RoomsFurnished),
		zap.Int("placed", result.Placed),
	)
	return report, nil
}
