package model

import (
	"gorm.io/gorm"
)

// RequestAgent is an agent assignment on a request: a denormalized
// snapshot of the agent at assignment time plus an ordering position.
// One request may carry several agents.
// Maps to the request_agent table.
type RequestAgent struct {
	gorm.Model

	// RequestUuid plus RequestType locate the owning request.
	RequestUuid string      `gorm:"column:request_uuid;index;type:char(20);not null"`
	RequestType RequestType `gorm:"column:request_type;type:varchar(15);not null"`

	// Agent snapshot.
	AgentUuid  string `gorm:"column:agent_uuid;index;type:char(20);not null"`
	AgentName  string `gorm:"column:agent_name;type:varchar(80)"`
	AgentEmail string `gorm:"column:agent_email;type:varchar(120)"`
	AgentPhone string `gorm:"column:agent_phone;type:varchar(20)"`
	AgentCreci string `gorm:"column:agent_creci;type:varchar(20)"`

	// Position preserves assignment order.
	Position int `gorm:"column:position;not null;default:0"`
}

// TableName sets the table name.
func (RequestAgent) TableName() string {
	return "request_agent"
}
