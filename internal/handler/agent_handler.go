package handler

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/infrastructure/middleware"
	"imovel_hub_server/internal/service"
	"imovel_hub_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// AgentHandler handles agent registration applications.
type AgentHandler struct {
	approvalService service.AgentApprovalService
}

// NewAgentHandler creates the agent application handler.
func NewAgentHandler(approvalService service.AgentApprovalService) *AgentHandler {
	return &AgentHandler{approvalService: approvalService}
}

// AgentApplyHandler files an agent application for the caller.
// POST /agents/apply
// Body: request.AgentApplyRequest
// Response: {"application_id": string}
func (h *AgentHandler) AgentApplyHandler(c *gin.Context) {
	var req request.AgentApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userUuid := c.GetString(middleware.CtxUserID)
	applicationId, err := h.approvalService.Apply(userUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"application_id": applicationId})
}

// ListAgentApplicationsHandler pages through applications.
// GET /admin/agent-applications?status=pending&page=1
// Query: request.ListAgentApplicationsRequest
// Response: respond.AgentApplicationListRespond
func (h *AgentHandler) ListAgentApplicationsHandler(c *gin.Context) {
	var req request.ListAgentApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.approvalService.List(req.Status, req.Page)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ApplicationActionHandler decides an application.
// POST /admin/agent-applications/:applicationId/action
// Body: request.ApplicationActionRequest
// Response: nil
func (h *AgentHandler) ApplicationActionHandler(c *gin.Context) {
	var req request.ApplicationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	applicationId := c.Param("applicationId")

	var err error
	switch req.Action {
	case "approve":
		err = h.approvalService.Approve(applicationId)
	case "deny":
		err = h.approvalService.Deny(applicationId, req.AdminMsg)
	default:
		err = errorx.Newf(errorx.CodeInvalidParam, "unknown action %q", req.Action)
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
