package model

// RequestType selects the request collection.
type RequestType string

const (
	TypeVisits       RequestType = "visits"
	TypeReservations RequestType = "reservations"
)

// IsValid checks if the request type is recognized.
func (t RequestType) IsValid() bool {
	return t == TypeVisits || t == TypeReservations
}

// RequestStatus is the lifecycle state of a request. Transitions are
// strictly forward: pending -> approved | denied, and for visits
// approved -> completed. Nothing re-enters pending.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusDenied    RequestStatus = "denied"
	StatusCompleted RequestStatus = "completed" // visits only
)

// visitStatuses and reservationStatuses are the per-type enums.
// Reservations never reach completed.
var (
	visitStatuses       = []RequestStatus{StatusPending, StatusApproved, StatusDenied, StatusCompleted}
	reservationStatuses = []RequestStatus{StatusPending, StatusApproved, StatusDenied}
)

// IsValidFor checks whether a status is a member of the enum for the
// given request type.
func (s RequestStatus) IsValidFor(t RequestType) bool {
	statuses := visitStatuses
	if t == TypeReservations {
		statuses = reservationStatuses
	}
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}
