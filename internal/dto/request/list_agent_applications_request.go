package request

// ListAgentApplicationsRequest carries agent application list filters.
// Page coerces like the request list: anything invalid becomes page 1.
// Used by: handler/agent_handler.go ListAgentApplicationsHandler
type ListAgentApplicationsRequest struct {
	Status string `form:"status"`
	Page   string `form:"page"`
}
