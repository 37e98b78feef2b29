package handler

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterHandler creates a client account.
// POST /auth/register
// Body: request.RegisterRequest
// Response: respond.RegisterRespond
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authService.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// LoginHandler verifies credentials and issues the token pair.
// POST /auth/login
// Body: request.LoginRequest
// Response: respond.LoginRespond
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authService.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshTokenHandler rotates the token pair.
// POST /auth/refresh
// Body: request.RefreshTokenRequest
// Response: respond.LoginRespond
func (h *AuthHandler) RefreshTokenHandler(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
