package model

import (
	"gorm.io/gorm"
)

// AgentApplication is a registration request from a user who wants the
// agent role. Approval upgrades the user and records the CRECI license.
// Maps to the agent_application table.
type AgentApplication struct {
	gorm.Model

	// Uuid is the public application id, format: G + timestamp-random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	// Applicant snapshot.
	UserUuid  string `gorm:"column:user_uuid;index;type:char(20);not null"`
	UserName  string `gorm:"column:user_name;type:varchar(80)"`
	UserEmail string `gorm:"column:user_email;type:varchar(120)"`

	Creci string `gorm:"column:creci;type:varchar(20);not null"`
	Cpf   string `gorm:"column:cpf;type:char(14)"`
	Phone string `gorm:"column:phone;type:varchar(20)"`

	// Status reuses the request lifecycle enum; applications never
	// reach completed.
	Status RequestStatus `gorm:"column:status;index;type:varchar(10);not null;default:pending"`

	AdminMsg string `gorm:"column:admin_msg;type:varchar(500)"`
}

// TableName sets the table name.
func (AgentApplication) TableName() string {
	return "agent_application"
}
