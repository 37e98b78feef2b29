package request

// ApplicationActionRequest carries an admin decision on an agent
// application. AdminMsg is mandatory for deny (checked by the
// service).
// Used by: handler/agent_handler.go ApplicationActionHandler
type ApplicationActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=approve deny"`
	AdminMsg string `json:"admin_msg"`
}
