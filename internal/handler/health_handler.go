package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// isoMillis matches the ISO 8601 form browsers produce (millisecond precision, Z suffix).
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-01-01T12:00:00.000Z"`
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a HealthHandler. A nil clock uses time.Now.
func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// CheckHealth godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}
