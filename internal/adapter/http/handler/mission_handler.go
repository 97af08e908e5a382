package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MissionHandler handles errand, transport and custom-call endpoints.
type MissionHandler struct {
	cloud ports.CloudService
}

// NewMissionHandler creates a new MissionHandler.
func NewMissionHandler(cloud ports.CloudService) *MissionHandler {
	return &MissionHandler{cloud: cloud}
}

// CreateErrand handles POST /api/v1/fleet/missions/errand.
func (h *MissionHandler) CreateErrand(c *gin.Context) {
	var req dto.TaskErrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CreateTaskErrand(c.Request.Context(), req, language(c))
	relay(c, res, err)
}

// CreateTransport handles POST /api/v1/fleet/missions/transport.
func (h *MissionHandler) CreateTransport(c *gin.Context) {
	var req dto.TransportTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CreateTransportTask(c.Request.Context(), req, language(c))
	relay(c, res, err)
}

// Call handles POST /api/v1/fleet/calls — summon a robot to a point.
func (h *MissionHandler) Call(c *gin.Context) {
	var req dto.CustomCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CustomCall(c.Request.Context(), req.Body(), language(c))
	relay(c, res, err)
}

// CancelCall handles POST /api/v1/fleet/calls/cancel.
func (h *MissionHandler) CancelCall(c *gin.Context) {
	var req dto.CustomCallCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CustomCallCancel(c.Request.Context(), req, language(c))
	relay(c, res, err)
}

// CompleteCall handles POST /api/v1/fleet/calls/complete.
func (h *MissionHandler) CompleteCall(c *gin.Context) {
	var req dto.CustomCallCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CustomCallComplete(c.Request.Context(), req, language(c))
	relay(c, res, err)
}

// ListCalls handles GET /api/v1/fleet/calls.
func (h *MissionHandler) ListCalls(c *gin.Context) {
	var q dto.CallListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.ListCalls(c.Request.Context(), q.SN, q.Limit, language(c))
	relay(c, res, err)
}
