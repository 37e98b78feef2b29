package model

import (
	"time"

	"gorm.io/gorm"
)

// VisitRequest is a client request to visit a property. The client and
// property fields are denormalized snapshots captured at submission
// time; they do not track later edits to the source records.
// Maps to the visit_request table.
type VisitRequest struct {
	gorm.Model

	// Uuid is the public request id, format: V + timestamp-random string.
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

	Status RequestStatus `gorm:"column:status;index;type:varchar(10);not null;default:pending"`

	// RequestedSlots are the candidate timestamps proposed by the
	// client, stored as a JSON array.
	RequestedSlots []time.Time `gorm:"column:requested_slots;serializer:json;type:text"`

	// ScheduledSlot is the confirmed timestamp. Set if and only if
	// Status is approved (or completed, which passes through approved).
	ScheduledSlot *time.Time `gorm:"column:scheduled_slot"`

	AdminMsg  string `gorm:"column:admin_msg;type:varchar(500)"`
	ClientMsg string `gorm:"column:client_msg;type:varchar(500)"`
}

// TableName sets the table name.
func (VisitRequest) TableName() string {
	return "visit_request"
}
