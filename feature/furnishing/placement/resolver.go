package placement

import (
	"context"
	"fmt"
	"strings"

	"room-furnisher/feature/furnishing/catalog"

	"go.uber.org/zap"
)

// Resolver turns a logical furniture name into an active family symbol.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a resolver logging misses to logger.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// Resolve looks name up in the catalog and then in the host, activating the
// symbol if needed. A miss in either place returns a nil handle and no error.
func (r *Resolver) Resolve(ctx context.Context, host Host, cat *catalog.Catalog, name string) (ItemHandle, error) {
	trimmed := strings.TrimSpace(name)

	desc, ok := cat.Lookup(trimmed)
	if !ok {
		fields := []zap.Field{zap.String("furniture", trimmed)}
		if suggestion, found := cat.Suggest(trimmed); found {
			fields = append(fields, zap.String("did_you_mean", suggestion))
		}
		r.logger.Debug("Furniture not in catalog", fields...)
		return nil, nil
	}

	item, ok, err := host.FindItem(ctx, desc.FamilyName, desc.TypeName)
	if err != nil {
		return nil, fmt.Errorf("%w: find %s/%s: %w", ErrHost, desc.FamilyName, desc.TypeName, err)
	}
	if !ok {
		r.logger.Debug("Family symbol not loaded in model",
			zap.String("furniture", trimmed),
			zap.String("family", desc.FamilyName),
			zap.String("type", desc.TypeName),
		)
		return nil, nil
	}

	if !item.IsActive() {
		if err := item.Activate(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrActivation, desc.FamilyName, desc.TypeName, err)
		}
	}

	return item, nil
}
