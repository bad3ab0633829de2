package source

import (
	"context"
	"fmt"

	"room-furnisher/feature/furnishing/catalog"

	"gorm.io/gorm"
)

// FurnitureType is a row of the furniture_types table.
type FurnitureType struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name;size:128"`
	FamilyName string `gorm:"column:family_name;size:128"`
	TypeName   string `gorm:"column:type_name;size:128"`
}

// TableName overrides the table name.
func (FurnitureType) TableName() string {
	return "furniture_types"
}

// FurnitureSet is a row of the furniture_sets table.
type FurnitureSet struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Code      string `gorm:"column:code;size:32;index"`
	RoomType  string `gorm:"column:room_type;size:128"`
	Furniture string `gorm:"column:furniture;type:text"`
}

// TableName overrides the table name.
func (FurnitureSet) TableName() string {
	return "furniture_sets"
}

// Database reads both tables from the model database, in primary key order.
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a database-backed source.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) Name() string { return KindDatabase }

func (d *Database) FurnitureTypes(ctx context.Context) ([][]string, error) {
	var records []FurnitureType
	if err := d.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query furniture_types: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), typesHeader...))
	for _, r := range records {
		rows = append(rows, []string{r.Name, r.FamilyName, r.TypeName})
	}
	return rows, nil
}

func (d *Database) FurnitureSets(ctx context.Context) ([][]string, error) {
	var records []FurnitureSet
	if err := d.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query furniture_sets: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, append([]string(nil), setsHeader...))
	for _, r := range records {
		rows = append(rows, []string{r.Code, r.RoomType, r.Furniture})
	}
	return rows, nil
}

// Migrate creates or updates the furniture tables.
func (d *Database) Migrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(&FurnitureType{}, &FurnitureSet{})
}

// Publish replaces the contents of both tables with the rows of src, in one transaction.
func (d *Database) Publish(ctx context.Context, src Source) error {
	types, err := src.FurnitureTypes(ctx)
	if err != nil {
		return err
	}
	sets, err := src.FurnitureSets(ctx)
	if err != nil {
		return err
	}

	typeRecords := make([]FurnitureType, 0, len(types))
	for i, row := range catalog.StripHeader(types) {
		if len(row) != 3 {
			return fmt.Errorf("furniture_types row %d: expected 3 fields, got %d", i, len(row))
		}
		typeRecords = append(typeRecords, FurnitureType{Name: row[0], FamilyName: row[1], TypeName: row[2]})
	}
	setRecords := make([]FurnitureSet, 0, len(sets))
	for i, row := range catalog.StripHeader(sets) {
		if len(row) != 3 {
			return fmt.Errorf("furniture_sets row %d: expected 3 fields, got %d", i, len(row))
		}
		setRecords = append(setRecords, FurnitureSet{Code: row[0], RoomType: row[1], Furniture: row[2]})
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FurnitureType{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FurnitureSet{}).Error; err != nil {
			return err
		}
		if len(typeRecords) > 0 {
			if err := tx.Create(&typeRecords).Error; err != nil {
				return err
			}
		}
		if len(setRecords) > 0 {
			if err := tx.Create(&setRecords).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
