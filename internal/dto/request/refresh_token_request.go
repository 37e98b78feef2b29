package request

// RefreshTokenRequest carries the refresh token to exchange.
// Used by: handler/auth_handler.go RefreshTokenHandler
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
