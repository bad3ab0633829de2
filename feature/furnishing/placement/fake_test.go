package placement_test

import (
	"context"
	"fmt"

	"room-furnisher/feature/furnishing/placement"
)

type fakeItem struct {
	family      string
	typ         string
	active      bool
	activateErr error
	activations int
}

func (i *fakeItem) FamilyName() string { return i.family }
func (i *fakeItem) TypeName() string   { return i.typ }
func (i *fakeItem) IsActive() bool     { return i.active }

func (i *fakeItem) Activate(ctx context.Context) error {
	if i.activateErr != nil {
		return i.activateErr
	}
	i.activations++
	i.active = true
	return nil
}

type attrWrite struct {
	name  string
	value any
}

type fakeRoom struct {
	id       string
	point    placement.Point
	pointErr error
	attrErr  error
	attrs    map[string]string
	writes   []attrWrite
}

func newRoom(id string, attrs map[string]string) *fakeRoom {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &fakeRoom{id: id, point: placement.Point{X: 1, Y: 2}, attrs: attrs}
}

func (r *fakeRoom) ID() string { return r.id }

func (r *fakeRoom) Point(ctx context.Context) (placement.Point, error) {
	return r.point, r.pointErr
}

func (r *fakeRoom) Attribute(ctx context.Context, name string) (string, bool, error) {
	if r.attrErr != nil {
		return "", false, r.attrErr
	}
	v, ok := r.attrs[name]
	return v, ok, nil
}

func (r *fakeRoom) SetAttribute(ctx context.Context, name string, value any) (bool, error) {
	if _, ok := r.attrs[name]; !ok {
		return false, nil
	}
	r.attrs[name] = fmt.Sprint(value)
	r.writes = append(r.writes, attrWrite{name: name, value: value})
	return true, nil
}

type instance struct {
	point placement.Point
	item  *fakeItem
}

// fakeModel is an in-memory Host and Workspace. A failed or dry unit of work
// restores instances and room parameters.
type fakeModel struct {
	rooms     []*fakeRoom
	items     []*fakeItem
	instances []instance
	createErr error
	findErr   error
	listErr   error
	units     []string
	committed int
}

func (m *fakeModel) UnitOfWork(ctx context.Context, name string, fn func(ctx context.Context, host placement.Host) error) error {
	m.units = append(m.units, name)

	savedInstances := len(m.instances)
	savedAttrs := make([]map[string]string, len(m.rooms))
	for i, r := range m.rooms {
		savedAttrs[i] = make(map[string]string, len(r.attrs))
		for k, v := range r.attrs {
			savedAttrs[i][k] = v
		}
	}

	if err := fn(ctx, m); err != nil {
		m.instances = m.instances[:savedInstances]
		for i, r := range m.rooms {
			r.attrs = savedAttrs[i]
		}
		return err
	}
	m.committed++
	return nil
}

func (m *fakeModel) Locations(ctx context.Context) ([]placement.Location, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]placement.Location, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *fakeModel) FindItem(ctx context.Context, familyName, typeName string) (placement.ItemHandle, bool, error) {
	if m.findErr != nil {
		return nil, false, m.findErr
	}
	for _, it := range m.items {
		if it.family == familyName && it.typ == typeName {
			return it, true, nil
		}
	}
	return nil, false, nil
}

func (m *fakeModel) CreateInstance(ctx context.Context, p placement.Point, item placement.ItemHandle) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.instances = append(m.instances, instance{point: p, item: item.(*fakeItem)})
	return nil
}

func (m *fakeModel) countOf(family string) int {
	n := 0
	for _, in := range m.instances {
		if in.item.family == family {
			n++
		}
	}
	return n
}
