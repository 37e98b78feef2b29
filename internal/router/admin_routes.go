package router

import (
	"imovel_hub_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the admin workflow: the request list,
// lifecycle actions, agent assignment and agent application review.
// Everything here requires the admin role.
func (rt *Router) RegisterAdminRoutes(engine *gin.Engine) {
	adminGroup := engine.Group("/admin", middleware.JWTAuth(), middleware.AdminOnly())
	{
		requestGroup := adminGroup.Group("/requests")
		{
			requestGroup.GET("", rt.handlers.AdminRequest.ListRequestsHandler)
			requestGroup.POST("/:type/:requestId/action", rt.handlers.AdminRequest.RequestActionHandler)
			requestGroup.POST("/:type/:requestId/agents", rt.handlers.AdminRequest.AssignAgentHandler)
			requestGroup.DELETE("/:type/:requestId", rt.handlers.AdminRequest.DeleteRequestHandler)
		}

		applicationGroup := adminGroup.Group("/agent-applications")
		{
			applicationGroup.GET("", rt.handlers.Agent.ListAgentApplicationsHandler)
			applicationGroup.POST("/:applicationId/action", rt.handlers.Agent.ApplicationActionHandler)
		}
	}
}
