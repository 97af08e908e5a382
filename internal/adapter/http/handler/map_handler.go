package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MapHandler handles map inventory and detail endpoints.
type MapHandler struct {
	cloud ports.CloudService
}

// NewMapHandler creates a new MapHandler.
func NewMapHandler(cloud ports.CloudService) *MapHandler {
	return &MapHandler{cloud: cloud}
}

// StoreList handles GET /api/v1/fleet/maps/store — all maps of a shop.
func (h *MapHandler) StoreList(c *gin.Context) {
	var q dto.StoreMapListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.StoreMapList(c.Request.Context(), q.ShopID, language(c))
	relay(c, res, err)
}

// List handles GET /api/v1/fleet/maps — maps known to one robot.
func (h *MapHandler) List(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.ListMaps(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}

// Current handles GET /api/v1/fleet/maps/current — the map a robot is
// on right now, optionally with its elements.
func (h *MapHandler) Current(c *gin.Context) {
	var q dto.CurrentMapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.CurrentMap(c.Request.Context(), q.SN, q.NeedElement, language(c))
	relay(c, res, err)
}

// Detail handles GET /api/v1/fleet/maps/detail.
func (h *MapHandler) Detail(c *gin.Context) {
	var q dto.MapDetailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.MapDetail(c.Request.Context(), q.ShopID, q.MapName, language(c))
	relay(c, res, err)
}

// Points handles GET /api/v1/fleet/maps/points — named destinations of
// the robot's current map.
func (h *MapHandler) Points(c *gin.Context) {
	var q dto.SNQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	res, err := h.cloud.ListPoints(c.Request.Context(), q.SN, language(c))
	relay(c, res, err)
}
