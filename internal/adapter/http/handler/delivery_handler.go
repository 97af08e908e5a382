package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DeliveryHandler handles multi-tray delivery endpoints.
type DeliveryHandler struct {
	cloud ports.CloudService
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(cloud ports.CloudService) *DeliveryHandler {
	return &DeliveryHandler{cloud: cloud}
}

// CreateTask handles POST /api/v1/fleet/deliveries.
func (h *DeliveryHandler) CreateTask(c *gin.Context) {
	var req dto.DeliveryTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.DeliveryTask(c.Request.Context(), req, language(c))
	relay(c, res, err)
}

// Action handles POST /api/v1/fleet/deliveries/action — operate the
// delivery the robot is currently executing.
func (h *DeliveryHandler) Action(c *gin.Context) {
	var req dto.DeliveryActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.DeliveryAction(c.Request.Context(), req, language(c))
	relay(c, res, err)
}
