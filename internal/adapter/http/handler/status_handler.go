package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatusHandler handles robot status, task-state and recharge endpoints.
type StatusHandler struct {
	cloud ports.CloudService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(cloud ports.CloudService) *StatusHandler {
	return &StatusHandler{cloud: cloud}
}

// BySN handles GET /api/v1/fleet/status/by-sn.
func (h *StatusHandler) BySN(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.StatusBySN(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// ByGroup handles GET /api/v1/fleet/status/by-group.
func (h *StatusHandler) ByGroup(c *gin.Context) {
	var q dto.GroupStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.StatusByGroup(c.Request.Context(), q.GroupID, language(c))
	relay(c, res, err)
}

// TaskState handles GET /api/v1/fleet/tasks/state.
func (h *StatusHandler) TaskState(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.TaskState(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// RechargeV1 handles GET /api/v1/fleet/recharge — send the robot back
// to its dock (legacy models).
func (h *StatusHandler) RechargeV1(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.RechargeV1(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// RechargeV2 handles GET /api/v1/fleet/recharge/v2.
func (h *StatusHandler) RechargeV2(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.RechargeV2(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// CloudHealth handles GET /api/v1/fleet/cloud/health — relays the
// vendor health endpoint through a signed request.
func (h *StatusHandler) CloudHealth(c *gin.Context) {
	res, err := h.cloud.HealthCheck(c.Request.Context(), language(c))
	relay(c, res, err)
}
