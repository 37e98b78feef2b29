package handler

import (
	"imovel_hub_server/internal/dto/request"
	"imovel_hub_server/internal/infrastructure/middleware"
	"imovel_hub_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles client-facing request submission.
type RequestHandler struct {
	lifecycleService service.RequestLifecycleService
}

// NewRequestHandler creates the client request handler.
func NewRequestHandler(lifecycleService service.RequestLifecycleService) *RequestHandler {
	return &RequestHandler{lifecycleService: lifecycleService}
}

// CreateVisitRequestHandler files a visit request for the caller.
// POST /requests/visits
// Body: request.CreateVisitRequest
// Response: {"request_id": string}
func (h *RequestHandler) CreateVisitRequestHandler(c *gin.Context) {
	var req request.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	clientUuid := c.GetString(middleware.CtxUserID)
	requestId, err := h.lifecycleService.SubmitVisit(clientUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"request_id": requestId})
}

// CreateReservationRequestHandler files a reservation request for the
// caller.
// POST /requests/reservations
// Body: request.CreateReservationRequest
// Response: {"request_id": string}
func (h *RequestHandler) CreateReservationRequestHandler(c *gin.Context) {
	var req request.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	clientUuid := c.GetString(middleware.CtxUserID)
	requestId, err := h.lifecycleService.SubmitReservation(clientUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"request_id": requestId})
}
