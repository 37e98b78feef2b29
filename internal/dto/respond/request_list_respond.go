package respond

import "time"

// ClientInfo is the flattened client snapshot exposed to the admin UI.
// Ref is the opaque public id; store handles never leak past here.
type ClientInfo struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Cpf   string `json:"cpf"`
}

// PropertyInfo is the flattened property snapshot.
type PropertyInfo struct {
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UnitInfo is the flattened unit snapshot (reservations only).
type UnitInfo struct {
	Ref        string `json:"ref"`
	Identifier string `json:"identifier"`
	Block      string `json:"block,omitempty"`
}

// AgentInfo is a flattened assigned-agent snapshot.
type AgentInfo struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Creci string `json:"creci"`
}

// RequestListItem is the uniform list shape for both request types.
// Agents is always a slice, empty when nothing is assigned; the
// visit-only fields are omitted for reservations.
type RequestListItem struct {
	Id             string       `json:"id"`
	Type           string       `json:"type"`
	Status         string       `json:"status"`
	Client         ClientInfo   `json:"client"`
	Property       PropertyInfo `json:"property"`
	Unit           *UnitInfo    `json:"unit,omitempty"`
	Agents         []AgentInfo  `json:"agents"`
	RequestedSlots []time.Time  `json:"requested_slots,omitempty"`
	ScheduledSlot  *time.Time   `json:"scheduled_slot,omitempty"`
	AdminMsg       string       `json:"admin_msg,omitempty"`
	ClientMsg      string       `json:"client_msg,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// RequestListRespond is the paginated admin request list.
type RequestListRespond struct {
	Requests   []RequestListItem `json:"requests"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}
