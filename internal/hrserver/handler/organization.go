package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/pkg/response"
)

// PositionHandler serves position lookups.
type PositionHandler struct {
	svc *biz.PositionService
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(svc *biz.PositionService) *PositionHandler {
	return &PositionHandler{svc: svc}
}

// List returns all positions.
func (h *PositionHandler) List(c *gin.Context) {
	positions, err := h.svc.List(c.Request.Context())
	response.Write(c, err, positions)
}

// LocationHandler serves office location lookups.
type LocationHandler struct {
	svc *biz.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(svc *biz.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// List returns all office locations.
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.svc.List(c.Request.Context())
	response.Write(c, err, locations)
}
