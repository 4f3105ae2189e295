package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/hr-center/internal/hrserver/biz"
	"github.com/kart-io/hr-center/pkg/response"
)

// WeatherHandler serves the office weather report.
type WeatherHandler struct {
	svc *biz.WeatherService
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(svc *biz.WeatherService) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

// Report returns current weather for every staffed location.
func (h *WeatherHandler) Report(c *gin.Context) {
	report, err := h.svc.Report(c.Request.Context())
	response.Write(c, err, report)
}

// SeedHandler loads reference data.
type SeedHandler struct {
	svc *biz.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(svc *biz.SeedService) *SeedHandler {
	return &SeedHandler{svc: svc}
}

// InitData upserts the office location catalogue.
func (h *SeedHandler) InitData(c *gin.Context) {
	locations, err := h.svc.InitLocations(c.Request.Context())
	response.Write(c, err, gin.H{"locations": locations})
}
