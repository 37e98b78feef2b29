package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and token refresh.
// All three are public.
func (rt *Router) RegisterAuthRoutes(engine *gin.Engine) {
	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/register", rt.handlers.Auth.RegisterHandler)
		authGroup.POST("/login", rt.handlers.Auth.LoginHandler)
		authGroup.POST("/refresh", rt.handlers.Auth.RefreshTokenHandler)
	}
}
