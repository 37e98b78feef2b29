package request

// RegisterRequest carries new-account data. CPF and telephone are
// validated and normalized by the auth service, not the binder.
// Used by: handler/auth_handler.go RegisterHandler
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=80"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Telephone string `json:"telephone" binding:"required"`
	Cpf       string `json:"cpf" binding:"required"`
}
