package placement

import "context"

// Point is a location in model coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Location is a room of the building model.
type Location interface {
	// ID identifies the room in logs and reports.
	ID() string
	// Point returns the room's reference point.
	Point(ctx context.Context) (Point, error)
	// Attribute reads a named parameter. ok is false when the room has no such parameter.
	Attribute(ctx context.Context, name string) (value string, ok bool, err error)
	// SetAttribute writes a named parameter. ok is false when the room has no such parameter.
	SetAttribute(ctx context.Context, name string, value any) (ok bool, err error)
}

// ItemHandle is a placeable family symbol.
type ItemHandle interface {
	FamilyName() string
	TypeName() string
	IsActive() bool
	// Activate makes the symbol usable for instance creation.
	Activate(ctx context.Context) error
}

// Host is the building model as seen from inside a unit of work.
type Host interface {
	// Locations returns every room of the model.
	Locations(ctx context.Context) ([]Location, error)
	// FindItem looks up a family symbol. ok is false when the model has none.
	FindItem(ctx context.Context, familyName, typeName string) (item ItemHandle, ok bool, err error)
	// CreateInstance places one instance of item at p.
	CreateInstance(ctx context.Context, p Point, item ItemHandle) error
}

// Workspace opens units of work on the building model.
//
// UnitOfWork runs fn against a Host whose mutations are committed only when fn
// returns nil. Any error abandons all of them.
type Workspace interface {
	UnitOfWork(ctx context.Context, name string, fn func(ctx context.Context, host Host) error) error
}
