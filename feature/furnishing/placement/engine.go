package placement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"room-furnisher/feature/furnishing/catalog"

	"go.uber.org/zap"
)

// Status is the terminal state of a room in a run.
type Status string

const (
	// StatusSkipped means the room had no set code or no set matched it.
	StatusSkipped Status = "skipped"
	// StatusPlaced means at least one set was applied, even if nothing resolved.
	StatusPlaced Status = "placed"
)

// Options controls a single run.
type Options struct {
	// DryRun applies everything inside the unit of work and then abandons it.
	DryRun bool
}

// LocationResult reports what a run did to one room.
type LocationResult struct {
	ID          string   `json:"id"`
	SetCode     string   `json:"set_code,omitempty"`
	Status      Status   `json:"status"`
	MatchedSets int      `json:"matched_sets"`
	Placed      int      `json:"placed"`
	Count       int      `json:"count,omitempty"`
	CountSet    bool     `json:"count_set"`
	Missing     []string `json:"missing,omitempty"`
}

// Result is the outcome of a run.
type Result struct {
	// Placed is the number of instances created across all rooms.
	Placed    int              `json:"placed"`
	DryRun    bool             `json:"dry_run"`
	Locations []LocationResult `json:"locations"`
}

// Engine applies furniture sets to the rooms of a workspace.
type Engine struct {
	workspace Workspace
	resolver  *Resolver
	cfg       Config
	logger    *zap.Logger
}

// NewEngine creates an engine. Empty config names fall back to DefaultConfig.
func NewEngine(workspace Workspace, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		workspace: workspace,
		resolver:  NewResolver(logger),
		cfg:       cfg.withDefaults(),
		logger:    logger,
	}
}

// Run furnishes every room inside one unit of work. On error nothing is
// committed and the partial result is discarded.
func (e *Engine) Run(ctx context.Context, cat *catalog.Catalog, sets *catalog.SetTable, opts Options) (*Result, error) {
	result := &Result{DryRun: opts.DryRun}

	err := e.workspace.UnitOfWork(ctx, e.cfg.UnitOfWorkName, func(ctx context.Context, host Host) error {
		locations, err := host.Locations(ctx)
		if err != nil {
			return fmt.Errorf("%w: enumerate rooms: %w", ErrHost, err)
		}

		for _, loc := range locations {
			lr, err := e.apply(ctx, host, loc, cat, sets)
			if err != nil {
				return err
			}
			result.Placed += lr.Placed
			result.Locations = append(result.Locations, lr)
		}

		if opts.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, err
	}

	return result, nil
}

func (e *Engine) apply(ctx context.Context, host Host, loc Location, cat *catalog.Catalog, sets *catalog.SetTable) (LocationResult, error) {
	lr := LocationResult{ID: loc.ID(), Status: StatusSkipped}
	log := e.logger.With(zap.String("room", lr.ID))

	code, ok, err := loc.Attribute(ctx, e.cfg.SetAttribute)
	if err != nil {
		return lr, fmt.Errorf("%w: room %s: read %q: %w", ErrHost, lr.ID, e.cfg.SetAttribute, err)
	}
	if !ok || code == "" {
		log.Debug("Room has no furniture set")
		return lr, nil
	}
	lr.SetCode = code

	matches := sets.Match(code)
	if len(matches) == 0 {
		log.Debug("No furniture set matches room", zap.String("set", code))
		return lr, nil
	}
	lr.Status = StatusPlaced

	// The point is read once, and only for rooms that receive furniture
	var point Point
	havePoint := false

	for _, set := range matches {
		lr.MatchedSets++

		for _, name := range set.Items {
			item, err := e.resolver.Resolve(ctx, host, cat, name)
			if err != nil {
				return lr, fmt.Errorf("room %s: %w", lr.ID, err)
			}
			if item == nil {
				lr.Missing = append(lr.Missing, strings.TrimSpace(name))
				continue
			}

			if !havePoint {
				point, err = loc.Point(ctx)
				if err != nil {
					return lr, fmt.Errorf("%w: room %s: reference point: %w", ErrHost, lr.ID, err)
				}
				havePoint = true
			}

			if err := host.CreateInstance(ctx, point, item); err != nil {
				return lr, fmt.Errorf("%w: room %s: %s/%s: %w", ErrCreation, lr.ID, item.FamilyName(), item.TypeName(), err)
			}
			lr.Placed++
		}

		// Overwrites the previous matching set's count
		written, err := loc.SetAttribute(ctx, e.cfg.CountAttribute, set.ItemCount())
		if err != nil {
			return lr, fmt.Errorf("%w: room %s: write %q: %w", ErrHost, lr.ID, e.cfg.CountAttribute, err)
		}
		if written {
			lr.Count = set.ItemCount()
			lr.CountSet = true
		}
	}

	log.Debug("Room furnished",
		zap.String("set", code),
		zap.Int("matched_sets", lr.MatchedSets),
		zap.Int("placed", lr.Placed),
		zap.Strings("missing", lr.Missing),
	)
	return lr, nil
}
