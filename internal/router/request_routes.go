package router

import (
	"imovel_hub_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRequestRoutes registers client request submission and the
// agent application endpoint. All require authentication.
func (rt *Router) RegisterRequestRoutes(engine *gin.Engine) {
	requestGroup := engine.Group("/requests", middleware.JWTAuth())
	{
		requestGroup.POST("/visits", rt.handlers.Request.CreateVisitRequestHandler)
		requestGroup.POST("/reservations", rt.handlers.Request.CreateReservationRequestHandler)
	}

	agentGroup := engine.Group("/agents", middleware.JWTAuth())
	{
		agentGroup.POST("/apply", rt.handlers.Agent.AgentApplyHandler)
	}
}
