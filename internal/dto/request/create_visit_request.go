package request

import "time"

// CreateVisitRequest carries a client's visit submission with the
// candidate time slots.
// Used by: handler/request_handler.go CreateVisitRequestHandler
type CreateVisitRequest struct {
	PropertyId     string      `json:"property_id" binding:"required"`
	RequestedSlots []time.Time `json:"requested_slots" binding:"required,min=1,max=5"`
	ClientMsg      string      `json:"client_msg" binding:"max=500"`
}
