package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/domain"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CallbackHandler receives push notifications from the cloud. The
// cloud retries on non-2xx, so the handler acknowledges as soon as the
// payload is decoded.
type CallbackHandler struct {
	log zerolog.Logger
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(log zerolog.Logger) *CallbackHandler {
	return &CallbackHandler{log: log}
}

// RobotPose handles POST /api/v1/fleet/callback/robot-pose.
func (h *CallbackHandler) RobotPose(c *gin.Context) {
	var req dto.RobotPoseCallback
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if domain.CallbackType(req.CallbackType) != domain.CallbackRobotPose {
		response.Error(c, apperror.ErrUnsupportedCallback(req.CallbackType))
		return
	}

	pose := domain.RobotPose{
		SN:              req.Data.SN,
		MAC:             req.Data.MAC,
		X:               req.Data.X,
		Y:               req.Data.Y,
		Yaw:             req.Data.Yaw,
		Timestamp:       req.Data.Timestamp,
		NotifyTimestamp: req.Data.NotifyTimestamp,
	}

	h.log.Info().
		Str("sn", pose.SN).
		Float64("x", pose.X).
		Float64("y", pose.Y).
		Float64("yaw", pose.Yaw).
		Int64("notify_timestamp", pose.NotifyTimestamp).
		Msg("robot pose received")

	response.OK(c, dto.CallbackAck{Status: "received", SN: pose.SN})
}
