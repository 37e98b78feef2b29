package model

import (
	"gorm.io/gorm"
)

// Property is a catalog listing. Units belong to a property and carry
// the sellable inventory; the property itself holds display data.
// Maps to the property table.
type Property struct {
	gorm.Model

	// Uuid is the public property id, format: P + timestamp-random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	Name        string `gorm:"column:name;type:varchar(120);not null"`
	Description string `gorm:"column:description;type:text"`

	Street string `gorm:"column:street;type:varchar(120)"`
	Number string `gorm:"column:number;type:varchar(10)"`
	City   string `gorm:"column:city;index;type:varchar(60)"`
	State  string `gorm:"column:state;type:char(2)"`
	Zip    string `gorm:"column:zip;type:varchar(10)"`

	// PhotoPath points into the static photo directory.
	PhotoPath string `gorm:"column:photo_path;type:varchar(255)"`
}

// TableName sets the table name.
func (Property) TableName() string {
	return "property"
}

// Address renders the display address used in request snapshots.
func (p *Property) Address() string {
	addr := p.Street
	if p.Number != "" {
		addr += ", " + p.Number
	}
	if p.City != "" {
		addr += " - " + p.City
	}
	if p.State != "" {
		addr += "/" + p.State
	}
	return addr
}
