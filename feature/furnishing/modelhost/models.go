package modelhost

import "time"

// Room is a row of the rooms table.
type Room struct {
	ID     uint    `gorm:"column:id;primaryKey"`
	Number string  `gorm:"column:number;size:32"`
	Name   string  `gorm:"column:name;size:128"`
	Placed bool    `gorm:"column:placed"`
	X      float64 `gorm:"column:x"`
	Y      float64 `gorm:"column:y"`
	Z      float64 `gorm:"column:z"`
}

// TableName overrides the table name.
func (Room) TableName() string {
	return "rooms"
}

// RoomParameter is a named parameter of a room.
type RoomParameter struct {
	ID     uint   `gorm:"column:id;primaryKey"`
	RoomID uint   `gorm:"column:room_id;uniqueIndex:idx_room_parameter"`
	Name   string `gorm:"column:name;size:128;uniqueIndex:idx_room_parameter"`
	Value  string `gorm:"column:value;size:255"`
}

// TableName overrides the table name.
func (RoomParameter) TableName() string {
	return "room_parameters"
}

// FamilySymbol is a placeable family type loaded in the model.
type FamilySymbol struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	FamilyName string `gorm:"column:family_name;size:128;uniqueIndex:idx_family_symbol"`
	TypeName   string `gorm:"column:type_name;size:128;uniqueIndex:idx_family_symbol"`
	Active     bool   `gorm:"column:active"`
}

// TableName overrides the table name.
func (FamilySymbol) TableName() string {
	return "family_symbols"
}

// FamilyInstance is one placed piece of furniture.
type FamilyInstance struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	SymbolID  uint      `gorm:"column:symbol_id;index"`
	RoomID    uint      `gorm:"column:room_id;index"`
	X         float64   `gorm:"column:x"`
	Y         float64   `gorm:"column:y"`
	Z         float64   `gorm:"column:z"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (FamilyInstance) TableName() string {
	return "family_instances"
}

// expectedColumns lists the columns CheckSchema requires per table.
var expectedColumns = map[string][]string{
	"rooms":            {"id", "number", "name", "placed", "x", "y", "z"},
	"room_parameters":  {"id", "room_id", "name", "value"},
	"family_symbols":   {"id", "family_name", "type_name", "active"},
	"family_instances": {"id", "symbol_id", "room_id", "x", "y", "z", "created_at"},
}
