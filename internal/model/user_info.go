// Package model defines the database entities.
package model

import (
	"gorm.io/gorm"
)

// User roles.
const (
	RoleClient = "client"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)

// UserInfo is a platform user: client, agent or admin.
// Maps to the user_info table.
type UserInfo struct {
	gorm.Model

	// Uuid is the public user id, format: U + timestamp-random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	Name      string `gorm:"column:name;type:varchar(80);not null"`
	Email     string `gorm:"column:email;uniqueIndex;type:varchar(120);not null"`
	Password  string `gorm:"column:password;type:varchar(80);not null"` // bcrypt hash
	Telephone string `gorm:"column:telephone;type:varchar(20)"`

	// Cpf is stored formatted (000.000.000-00).
	Cpf string `gorm:"column:cpf;type:char(14)"`

	// Role is one of RoleClient, RoleAgent, RoleAdmin.
	Role string `gorm:"column:role;type:varchar(10);not null;default:client"`

	// Creci is the agent license id, set once an agent application
	// is approved.
	Creci string `gorm:"column:creci;type:varchar(20)"`

	// Status: 0=active, 1=disabled.
	Status int8 `gorm:"column:status;not null;default:0"`
}

// TableName sets the table name.
func (UserInfo) TableName() string {
	return "user_info"
}
