package request

// AssignAgentRequest carries the agent to assign to a request.
// Used by: handler/admin_request_handler.go AssignAgentHandler
type AssignAgentRequest struct {
	AgentId string `json:"agent_id" binding:"required"`
}
