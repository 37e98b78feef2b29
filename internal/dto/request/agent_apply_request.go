package request

// AgentApplyRequest carries an agent registration application.
// Used by: handler/agent_handler.go AgentApplyHandler
type AgentApplyRequest struct {
	Creci string `json:"creci" binding:"required,min=4,max=20"`
	Cpf   string `json:"cpf" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}
