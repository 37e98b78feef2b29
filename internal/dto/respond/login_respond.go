package respond

// LoginRespond carries the token pair issued on login or refresh.
type LoginRespond struct {
	UserId       string `json:"user_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRespond carries the public id of a freshly created account.
type RegisterRespond struct {
	UserId string `json:"user_id"`
}
