// Package router registers the HTTP routes, grouped per module in
// separate files. Public routes sit at the top level; authenticated
// routes go through the JWT middleware and admin routes additionally
// through the role gate.
package router

import (
	"imovel_hub_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router registers every route group over the handler aggregate.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates the router.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes wires all route groups onto the engine.
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	rt.RegisterAuthRoutes(engine)
	rt.RegisterCatalogRoutes(engine)
	rt.RegisterRequestRoutes(engine)
	rt.RegisterAdminRoutes(engine)
}
