package model

import (
	"gorm.io/gorm"
)

// ReservationRequest is a client request to reserve a unit. Approval
// marks the referenced unit unavailable in the same transaction.
// Maps to the reservation_request table.
type ReservationRequest struct {
	gorm.Model

	// Uuid is the public request id, format: R + timestamp-random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	// Client snapshot.
	ClientUuid  string `gorm:"column:client_uuid;index;type:char(20);not null"`
	ClientName  string `gorm:"column:client_name;type:varchar(80);not null"`
	ClientEmail string `gorm:"column:client_email;type:varchar(120)"`
	ClientPhone string `gorm:"column:client_phone;type:varchar(20)"`
	ClientCpf   string `gorm:"column:client_cpf;type:char(14)"`

	// Property snapshot.
	PropertyUuid    string `gorm:"column:property_uuid;index;type:char(20);not null"`
	PropertyName    string `gorm:"column:property_name;type:varchar(120)"`
	PropertyAddress string `gorm:"column:property_address;type:varchar(255)"`

	// Unit snapshot.
	UnitUuid       string `gorm:"column:unit_uuid;index;type:char(20);not null"`
	UnitIdentifier string `gorm:"column:unit_identifier;type:varchar(20)"`
	UnitBlock      string `gorm:"column:unit_block;type:varchar(20)"`

	Status RequestStatus `gorm:"column:status;index;type:varchar(10);not null;default:pending"`

	AdminMsg  string `gorm:"column:admin_msg;type:varchar(500)"`
	ClientMsg string `gorm:"column:client_msg;type:varchar(500)"`
}

// TableName sets the table name.
func (ReservationRequest) TableName() string {
	return "reservation_request"
}
