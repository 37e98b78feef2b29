package model

import (
	"gorm.io/gorm"
)

// Unit is a sellable/rentable inventory item within a property.
// Reservation approval flips IsAvailable to false.
// Maps to the unit table.
type Unit struct {
	gorm.Model

	// Uuid is the public unit id, format: N + timestamp-random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	// PropertyUuid references the owning property.
	PropertyUuid string `gorm:"column:property_uuid;index;type:char(20);not null"`

	// Identifier is the unit number inside the property, e.g. "302".
	Identifier string `gorm:"column:identifier;type:varchar(20);not null"`

	// Block is the tower/block label, empty for single-block properties.
	Block string `gorm:"column:block;type:varchar(20)"`

	// Price in centavos.
	Price int64 `gorm:"column:price;not null"`

	Bedrooms int     `gorm:"column:bedrooms"`
	AreaSqm  float64 `gorm:"column:area_sqm"`

	// IsAvailable is set explicitly on create; no column default, so
	// inserting an unavailable unit works without a pointer field.
	IsAvailable bool `gorm:"column:is_available;not null"`
}

// TableName sets the table name.
func (Unit) TableName() string {
	return "unit"
}
