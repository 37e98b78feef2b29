package request

// CreateReservationRequest carries a client's reservation submission.
// Used by: handler/request_handler.go CreateReservationRequestHandler
type CreateReservationRequest struct {
	UnitId    string `json:"unit_id" binding:"required"`
	ClientMsg string `json:"client_msg" binding:"max=500"`
}
