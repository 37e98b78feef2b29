package request

// ListRequestsRequest carries the admin request-list filters.
// Page is bound as a raw string: invalid or missing values coerce to
// page 1 in the query service instead of failing the bind.
// Used by: handler/admin_request_handler.go ListRequestsHandler
type ListRequestsRequest struct {
	Type   string `form:"type" binding:"required,oneof=visits reservations"`
	Status string `form:"status"`
	Q      string `form:"q"`
	Page   string `form:"page"`
}
