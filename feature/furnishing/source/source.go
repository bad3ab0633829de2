package source

import (
	"context"
	"fmt"

	"room-furnisher/feature/furnishing/catalog"

	"golang.org/x/sync/errgroup"
)

// Source provides the raw furniture tables, header rows included.
type Source interface {
	// Name identifies the source in logs and cache keys.
	Name() string
	// FurnitureTypes returns (name, family name, type name) rows.
	FurnitureTypes(ctx context.Context) ([][]string, error)
	// FurnitureSets returns (set code, room type, furniture list) rows.
	FurnitureSets(ctx context.Context) ([][]string, error)
}

// Tables are the parsed tables of one source.
type Tables struct {
	Source  string
	Catalog *catalog.Catalog
	Sets    *catalog.SetTable
}

// Load fetches both tables of src concurrently and builds them.
func Load(ctx context.Context, src Source) (*Tables, error) {
	var typeRows, setRows [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := src.FurnitureTypes(gctx)
		if err != nil {
			return fmt.Errorf("%s: furniture types: %w", src.Name(), err)
		}
		typeRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := src.FurnitureSets(gctx)
		if err != nil {
			return fmt.Errorf("%s: furniture sets: %w", src.Name(), err)
		}
		setRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat, err := catalog.BuildCatalog(catalog.StripHeader(typeRows))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	sets, err := catalog.BuildSetTable(catalog.StripHeader(setRows))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}

	return &Tables{Source: src.Name(), Catalog: cat, Sets: sets}, nil
}
