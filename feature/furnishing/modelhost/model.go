package modelhost

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"room-furnisher/core/database"
	"room-furnisher/core/utils"
	"room-furnisher/feature/furnishing/catalog"
	"room-furnisher/feature/furnishing/placement"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnplaced is returned when a room has no reference point.
var ErrUnplaced = errors.New("room is not placed")

// Model is a database-backed building model.
type Model struct {
	db     *gorm.DB
	logger *zap.Logger
}

// New creates a model on db.
func New(db *gorm.DB, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{db: db, logger: logger}
}

// Migrate creates or updates the model tables.
func (m *Model) Migrate(ctx context.Context) error {
	return m.db.WithContext(ctx).AutoMigrate(&Room{}, &RoomParameter{}, &FamilySymbol{}, &FamilyInstance{})
}

// CheckSchema returns the missing columns per table, empty when the schema is complete.
func (m *Model) CheckSchema(ctx context.Context) (map[string][]string, error) {
	tables := make([]string, 0, len(expectedColumns))
	for table := range expectedColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	missing := make(map[string][]string)
	for _, table := range tables {
		cols, err := database.MissingColumns(m.db.WithContext(ctx), table, expectedColumns[table])
		if err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			missing[table] = cols
		}
	}
	return missing, nil
}

// UnitOfWork runs fn inside a database transaction.
func (m *Model) UnitOfWork(ctx context.Context, name string, fn func(ctx context.Context, host placement.Host) error) error {
	log := m.logger.With(zap.String("unit_of_work", name))
	log.Debug("Unit of work started")

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &txHost{tx: tx})
	})
	if err != nil {
		log.Debug("Unit of work rolled back", zap.Error(err))
		return err
	}

	log.Debug("Unit of work committed")
	return nil
}

// LoadSymbols registers a family symbol for every catalog entry the model
// does not have yet. New symbols start inactive. It returns the number added.
func (m *Model) LoadSymbols(ctx context.Context, cat *catalog.Catalog) (int, error) {
	added := 0
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range cat.Items() {
			var sym FamilySymbol
			err := tx.Where("family_name = ? AND type_name = ?", d.FamilyName, d.TypeName).First(&sym).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(&FamilySymbol{FamilyName: d.FamilyName, TypeName: d.TypeName}).Error; err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("load family symbols: %w", err)
	}
	return added, nil
}

// RoomSummary is a room with its furnishing parameters.
type RoomSummary struct {
	ID        uint   `json:"id"`
	Number    string `json:"number"`
	Name      string `json:"name"`
	SetCode   string `json:"set_code,omitempty"`
	Count     int    `json:"count"`
	HasCount  bool   `json:"has_count"`
	Placed    bool   `json:"placed"`
	Instances int    `json:"instances"`
}

// Rooms lists every room with the values of the set and count parameters.
func (m *Model) Rooms(ctx context.Context, setAttribute, countAttribute string) ([]RoomSummary, error) {
	db := m.db.WithContext(ctx)

	var rooms []Room
	if err := db.Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		summary := RoomSummary{ID: r.ID, Number: r.Number, Name: r.Name, Placed: r.Placed}

		var params []RoomParameter
		if err := db.Where("room_id = ? AND name IN ?", r.ID, []string{setAttribute, countAttribute}).Find(&params).Error; err != nil {
			return nil, fmt.Errorf("room %d parameters: %w", r.ID, err)
		}
		for _, p := range params {
			switch p.Name {
			case setAttribute:
				summary.SetCode = p.Value
			case countAttribute:
				summary.Count = utils.ToInt(p.Value)
				summary.HasCount = true
			}
		}

		var n int64
		if err := db.Model(&FamilyInstance{}).Where("room_id = ?", r.ID).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("room %d instances: %w", r.ID, err)
		}
		summary.Instances = int(n)
		out = append(out, summary)
	}
	return out, nil
}

// txHost is the model as seen from inside a transaction.
type txHost struct {
	tx *gorm.DB
	// room owns the instances created next. It is set when a room's
	// point is read, which the engine does before placing into it.
	room uint
}

func (h *txHost) Locations(ctx context.Context) ([]placement.Location, error) {
	var rooms []Room
	if err := h.tx.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}

	out := make([]placement.Location, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, &roomLocation{host: h, room: r})
	}
	return out, nil
}

func (h *txHost) FindItem(ctx context.Context, familyName, typeName string) (placement.ItemHandle, bool, error) {
	var sym FamilySymbol
	err := h.tx.WithContext(ctx).Where("family_name = ? AND type_name = ?", familyName, typeName).First(&sym).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &symbolHandle{tx: h.tx, sym: sym}, true, nil
}

func (h *txHost) CreateInstance(ctx context.Context, p placement.Point, item placement.ItemHandle) error {
	handle, ok := item.(*symbolHandle)
	if !ok {
		return fmt.Errorf("item %s/%s does not belong to this model", item.FamilyName(), item.TypeName())
	}
	return h.tx.WithContext(ctx).Create(&FamilyInstance{SymbolID: handle.sym.ID, RoomID: h.room, X: p.X, Y: p.Y, Z: p.Z}).Error
}

type roomLocation struct {
	host *txHost
	room Room
}

func (l *roomLocation) ID() string {
	if l.room.Number != "" {
		return l.room.Number
	}
	return strconv.FormatUint(uint64(l.room.ID), 10)
}

func (l *roomLocation) Point(ctx context.Context) (placement.Point, error) {
	if !l.room.Placed {
		return placement.Point{}, ErrUnplaced
	}
	l.host.room = l.room.ID
	return placement.Point{X: l.room.X, Y: l.room.Y, Z: l.room.Z}, nil
}

func (l *roomLocation) Attribute(ctx context.Context, name string) (string, bool, error) {
	param, ok, err := l.param(ctx, name)
	if err != nil || !ok {
		return "", false, err
	}
	return param.Value, true, nil
}

func (l *roomLocation) SetAttribute(ctx context.Context, name string, value any) (bool, error) {
	param, ok, err := l.param(ctx, name)
	if err != nil || !ok {
		return false, err
	}
	if err := l.host.tx.WithContext(ctx).Model(&param).Update("value", utils.ToString(value)).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (l *roomLocation) param(ctx context.Context, name string) (RoomParameter, bool, error) {
	var param RoomParameter
	err := l.host.tx.WithContext(ctx).Where("room_id = ? AND name = ?", l.room.ID, name).First(&param).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return param, false, nil
	}
	if err != nil {
		return param, false, err
	}
	return param, true, nil
}

type symbolHandle struct {
	tx  *gorm.DB
	sym FamilySymbol
}

func (s *symbolHandle) FamilyName() string { return s.sym.FamilyName }
func (s *symbolHandle) TypeName() string   { return s.sym.TypeName }
func (s *symbolHandle) IsActive() bool     { return s.sym.Active }

func (s *symbolHandle) Activate(ctx context.Context) error {
	if err := s.tx.WithContext(ctx).Model(&s.sym).Update("active", true).Error; err != nil {
		return err
	}
	s.sym.Active = true
	return nil
}
