package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// RobotHandler handles robot inventory and position endpoints.
type RobotHandler struct {
	cloud ports.CloudService
}

// NewRobotHandler creates a new RobotHandler.
func NewRobotHandler(cloud ports.CloudService) *RobotHandler {
	return &RobotHandler{cloud: cloud}
}

// ListGroups handles GET /api/v1/fleet/robots/groups.
func (h *RobotHandler) ListGroups(c *gin.Context) {
	var q dto.RobotGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.ListRobotGroups(c.Request.Context(), q.Device, q.ShopID, language(c))
	relay(c, res, err)
}

// List handles GET /api/v1/fleet/robots.
func (h *RobotHandler) List(c *gin.Context) {
	var q dto.RobotListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.ListRobots(c.Request.Context(), q.Device, q.GroupID, language(c))
	relay(c, res, err)
}

// Position handles GET /api/v1/fleet/robots/position.
func (h *RobotHandler) Position(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.RobotPosition(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// PositionCommand handles POST /api/v1/fleet/robots/position/command.
// The robot replies asynchronously on the robot-pose callback route.
func (h *RobotHandler) PositionCommand(c *gin.Context) {
	var req dto.PositionCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.PositionCommand(c.Request.Context(), req, language(c))
	relay(c, res, err)
}
