package request

import "time"

// RequestActionRequest carries an admin lifecycle action on a request.
// AdminMsg is mandatory for deny (checked by the lifecycle service so
// the failure carries the business error code). ScheduledSlot applies
// to visit approval only; when omitted the first requested slot is
// confirmed.
// Used by: handler/admin_request_handler.go RequestActionHandler
type RequestActionRequest struct {
	Action        string     `json:"action" binding:"required,oneof=approve deny complete"`
	AdminMsg      string     `json:"admin_msg"`
	ScheduledSlot *time.Time `json:"scheduled_slot"`
}
