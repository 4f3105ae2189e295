package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/version"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/response"
)

// HealthHandler reports service liveness and store reachability.
type HealthHandler struct {
	store store.Factory
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store store.Factory) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check pings the store and reports status. It is the only
// unauthenticated endpoint.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		response.Write(c, errors.ErrServiceUnavailable.WithCause(err), nil)
		return
	}

	response.Write(c, nil, gin.H{
		"status":    "ok",
		"version":   version.Get().GitVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
