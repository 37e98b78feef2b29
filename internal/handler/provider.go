// Package handler hosts the HTTP request handlers. Each handler binds
// the request, delegates to its service and writes the uniform
// response envelope; business rules live in the service layer.
package handler

import (
	"imovel_hub_server/internal/service"
)

// Handlers aggregates every handler instance. The router receives
// this as its single dependency.
type Handlers struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Request      *RequestHandler
	AdminRequest *AdminRequestHandler
	Agent        *AgentHandler
}

// NewHandlers wires the handler layer over the service aggregate.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		Catalog:      NewCatalogHandler(svc.Catalog),
		Request:      NewRequestHandler(svc.RequestLifecycle),
		AdminRequest: NewAdminRequestHandler(svc.RequestQuery, svc.RequestLifecycle),
		Agent:        NewAgentHandler(svc.AgentApproval),
	}
}
