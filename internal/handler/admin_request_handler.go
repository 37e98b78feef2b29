package handler

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/service"
	"imovel_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// AdminRequestHandler handles the admin request workflow: listing and
// lifecycle actions over visit and reservation requests.
type AdminRequestHandler struct {
	queryService     service.RequestQueryService
	lifecycleService service.RequestLifecycleService
}

// NewAdminRequestHandler creates the admin request handler.
func NewAdminRequestHandler(queryService service.RequestQueryService, lifecycleService service.RequestLifecycleService) *AdminRequestHandler {
	return &AdminRequestHandler{
		queryService:     queryService,
		lifecycleService: lifecycleService,
	}
}

// ListRequestsHandler pages through requests of one type.
// GET /admin/requests?type=visits&status=pending&q=xxx&page=1
// Query: request.ListRequestsRequest
// Response: respond.RequestListRespond
func (h *AdminRequestHandler) ListRequestsHandler(c *gin.Context) {
	var req request.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.queryService.List(req.Type, req.Status, req.Q, req.Page)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RequestActionHandler applies a lifecycle action to a request.
// POST /admin/requests/:type/:requestId/action
// Body: request.RequestActionRequest
// Response: nil
func (h *AdminRequestHandler) RequestActionHandler(c *gin.Context) {
	var req request.RequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	requestType := c.Param("type")
	requestId := c.Param("requestId")

	var err error
	switch req.Action {
	case "approve":
		err = h.lifecycleService.Approve(requestType, requestId, req)
	case "deny":
		err = h.lifecycleService.Deny(requestType, requestId, req.AdminMsg)
	case "complete":
		err = h.lifecycleService.Complete(requestType, requestId)
	default:
		err = errorx.Newf(errorx.CodeInvalidParam, "unknown action %q", req.Action)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteRequestHandler removes a request.
// DELETE /admin/requests/:type/:requestId
// Response: nil
func (h *AdminRequestHandler) DeleteRequestHandler(c *gin.Context) {
	if err := h.lifecycleService.Delete(c.Param("type"), c.Param("requestId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AssignAgentHandler assigns an agent to a request.
// POST /admin/requests/:type/:requestId/agents
// Body: request.AssignAgentRequest
// Response: nil
func (h *AdminRequestHandler) AssignAgentHandler(c *gin.Context) {
	var req request.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	err := h.lifecycleService.AssignAgent(c.Param("type"), c.Param("requestId"), req.AgentId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
