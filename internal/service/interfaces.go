// Package service defines the business-layer interfaces consumed by
// the handler layer, and the dependency-injection aggregate.
package service

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/dto/respond"
)

// AuthService handles registration, login and token refresh.
type AuthService interface {
	// Register creates a client account after CPF/phone validation.
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login verifies credentials and issues the token pair.
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh rotates the token pair against the pinned session.
	Refresh(refreshToken string) (*respond.LoginRespond, error)
}

// RequestQueryService is the read side of the admin request workflow:
// filter, search and paginate visit/reservation requests into the
// uniform list shape.
type RequestQueryService interface {
	// List pages through requests of one type. rawPage coerces to 1
	// when invalid; an unknown status for the type fails with an
	// invalid-filter error.
	List(requestType, status, search, rawPage string) (*respond.RequestListRespond, error)
}

// RequestLifecycleService is the write side: validated status
// transitions and agent assignment.
type RequestLifecycleService interface {
	// Approve moves a pending request to approved. For visits the
	// confirmed slot is recorded; for reservations the unit is claimed
	// in the same transaction.
	Approve(requestType, uuid string, req request.RequestActionRequest) error
	// Deny moves a pending request to denied; requires a reason.
	Deny(requestType, uuid, adminMsg string) error
	// Complete moves an approved visit to completed. Visits only.
	Complete(requestType, uuid string) error
	// Delete removes a request, refusing when policy forbids it
	// (approved reservations hold a unit).
	Delete(requestType, uuid string) error
	// AssignAgent snapshots an agent onto a request.
	AssignAgent(requestType, uuid, agentUuid string) error
	// SubmitVisit files a client visit request.
	SubmitVisit(clientUuid string, req request.CreateVisitRequest) (string, error)
	// SubmitReservation files a client reservation request.
	SubmitReservation(clientUuid string, req request.CreateReservationRequest) (string, error)
}

// CatalogService serves public property browsing and favorites.
type CatalogService interface {
	// ListProperties pages through the catalog.
	ListProperties(city, search, rawPage string) (*respond.PropertyListRespond, error)
	// GetProperty returns a property with its units.
	GetProperty(uuid string) (*respond.PropertyDetailRespond, error)
	// ToggleFavorite flips a favorite and reports the new state.
	ToggleFavorite(userUuid, propertyUuid string) (bool, error)
	// ListFavorites lists the caller's favorited properties.
	ListFavorites(userUuid string) ([]respond.PropertyListItem, error)
}

// AgentApprovalService manages agent registration applications.
type AgentApprovalService interface {
	// Apply files an application for the calling user.
	Apply(userUuid string, req request.AgentApplyRequest) (string, error)
	// List pages through applications.
	List(status, rawPage string) (*respond.AgentApplicationListRespond, error)
	// Approve grants the agent role to the applicant.
	Approve(uuid string) error
	// Deny rejects an application; requires a reason.
	Deny(uuid, adminMsg string) error
}
