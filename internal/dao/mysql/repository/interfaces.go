// Package repository implements the data access layer. All repository
// interfaces live in this file; implementations sit in per-entity
// files. The Repositories aggregate is the unit services receive, and
// Transaction rebinds it to a transactional *gorm.DB.
package repository

import (
	"imovel_hub_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository interfaces ====================

// UserRepository provides user persistence.
type UserRepository interface {
	// FindByUuid finds a user by public id.
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByEmail finds a user by login email.
	FindByEmail(email string) (*model.UserInfo, error)
	// Create inserts a new user.
	Create(user *model.UserInfo) error
	// Update saves all user fields.
	Update(user *model.UserInfo) error
	// PromoteToAgent sets the agent role and CRECI on a user.
	PromoteToAgent(uuid, creci string) error
}

// PropertyRepository provides catalog property persistence.
type PropertyRepository interface {
	// FindByUuid finds a property by public id.
	FindByUuid(uuid string) (*model.Property, error)
	// FindByUuids batch-loads properties by public id.
	FindByUuids(uuids []string) ([]model.Property, error)
	// GetPropertyList pages through properties filtered by city and
	// case-insensitive name substring. Returns the page and the total
	// before paging.
	GetPropertyList(city, search string, offset, limit int) ([]model.Property, int64, error)
	// Create inserts a new property.
	Create(property *model.Property) error
}

// UnitRepository provides unit persistence, including the conditional
// availability flip used by reservation approval.
type UnitRepository interface {
	// FindByUuid finds a unit by public id.
	FindByUuid(uuid string) (*model.Unit, error)
	// FindByPropertyUuid lists the units of a property.
	FindByPropertyUuid(propertyUuid string) ([]model.Unit, error)
	// Create inserts a new unit.
	Create(unit *model.Unit) error
	// SetAvailabilityIf flips is_available from the expected current
	// value. Returns the number of rows changed: 0 means the unit was
	// missing or already flipped, which callers treat as a lost race.
	SetAvailabilityIf(uuid string, current, next bool) (int64, error)
}

// VisitRequestRepository provides visit request persistence.
type VisitRequestRepository interface {
	// FindByUuid finds a visit request by public id.
	FindByUuid(uuid string) (*model.VisitRequest, error)
	// Search pages through visit requests filtered by status and a
	// case-insensitive substring over client or property name.
	Search(status model.RequestStatus, search string, offset, limit int) ([]model.VisitRequest, int64, error)
	// Create inserts a new visit request.
	Create(request *model.VisitRequest) error
	// UpdateStatusIfCurrent moves status from current to next in one
	// conditional write, applying extra column updates alongside
	// (the confirmed slot, the admin message).
	// Returns rows changed; 0 means the precondition did not hold.
	UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error)
	// SoftDelete removes a visit request (soft).
	SoftDelete(uuid string) (int64, error)
}

// ReservationRequestRepository provides reservation request persistence.
type ReservationRequestRepository interface {
	// FindByUuid finds a reservation request by public id.
	FindByUuid(uuid string) (*model.ReservationRequest, error)
	// Search pages through reservation requests filtered by status and
	// a case-insensitive substring over client or property name.
	Search(status model.RequestStatus, search string, offset, limit int) ([]model.ReservationRequest, int64, error)
	// Create inserts a new reservation request.
	Create(request *model.ReservationRequest) error
	// UpdateStatusIfCurrent moves status from current to next in one
	// conditional write, applying extra column updates alongside.
	// Returns rows changed; 0 means the precondition did not hold.
	UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error)
	// SoftDelete removes a reservation request (soft).
	SoftDelete(uuid string) (int64, error)
}

// RequestAgentRepository provides agent assignment persistence.
type RequestAgentRepository interface {
	// FindByRequest lists the agents assigned to one request, in
	// assignment order.
	FindByRequest(requestUuid string, requestType model.RequestType) ([]model.RequestAgent, error)
	// FindByRequests batch-loads assignments for a page of requests.
	FindByRequests(requestUuids []string, requestType model.RequestType) ([]model.RequestAgent, error)
	// Create inserts a new assignment.
	Create(assignment *model.RequestAgent) error
	// CountByRequest counts assignments on a request, used to compute
	// the next position.
	CountByRequest(requestUuid string, requestType model.RequestType) (int64, error)
	// DeleteByRequest removes all assignments of a request.
	DeleteByRequest(requestUuid string, requestType model.RequestType) error
}

// AgentApplicationRepository provides agent application persistence.
type AgentApplicationRepository interface {
	// FindByUuid finds an application by public id.
	FindByUuid(uuid string) (*model.AgentApplication, error)
	// FindPendingByUser finds a user's pending application, if any.
	FindPendingByUser(userUuid string) (*model.AgentApplication, error)
	// Search pages through applications filtered by status.
	Search(status model.RequestStatus, offset, limit int) ([]model.AgentApplication, int64, error)
	// Create inserts a new application.
	Create(application *model.AgentApplication) error
	// UpdateStatusIfCurrent moves status from current to next in one
	// conditional write. Returns rows changed.
	UpdateStatusIfCurrent(uuid string, current, next model.RequestStatus, extra map[string]interface{}) (int64, error)
}

// FavoriteRepository provides favorite persistence.
type FavoriteRepository interface {
	// Exists reports whether a user favorited a property.
	Exists(userUuid, propertyUuid string) (bool, error)
	// Create inserts a favorite.
	Create(favorite *model.Favorite) error
	// Delete removes a favorite.
	Delete(userUuid, propertyUuid string) error
	// FindByUser lists a user's favorited property uuids.
	FindByUser(userUuid string) ([]string, error)
}

// ==================== Aggregate ====================

// Repositories aggregates every repository over one *gorm.DB, the unit
// injected into the service layer.
type Repositories struct {
	db                 *gorm.DB
	User               UserRepository
	Property           PropertyRepository
	Unit               UnitRepository
	VisitRequest       VisitRequestRepository
	ReservationRequest ReservationRequestRepository
	RequestAgent       RequestAgentRepository
	AgentApplication   AgentApplicationRepository
	Favorite           FavoriteRepository
}

// NewRepositories builds the aggregate over db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:                 db,
		User:               NewUserRepository(db),
		Property:           NewPropertyRepository(db),
		Unit:               NewUnitRepository(db),
		VisitRequest:       NewVisitRequestRepository(db),
		ReservationRequest: NewReservationRequestRepository(db),
		RequestAgent:       NewRequestAgentRepository(db),
		AgentApplication:   NewAgentApplicationRepository(db),
		Favorite:           NewFavoriteRepository(db),
	}
}

// Transaction runs fn against a Repositories bound to a database
// transaction. Returning an error rolls everything back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
