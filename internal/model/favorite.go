package model

import (
	"gorm.io/gorm"
)

// Favorite marks a property favorited by a user. The durable record
// lives here; Redis keeps a per-user set for fast toggling and reads.
// Maps to the favorite table.
type Favorite struct {
	gorm.Model

	UserUuid     string `gorm:"column:user_uuid;index:idx_fav_user_property,unique;type:char(20);not null"`
	PropertyUuid string `gorm:"column:property_uuid;index:idx_fav_user_property,unique;type:char(20);not null"`
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorite"
}
