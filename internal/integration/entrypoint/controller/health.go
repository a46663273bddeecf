// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// HealthProbe checks one dependency of the service.
type HealthProbe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	probes []HealthProbe
	now    func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	Timestamp  string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(now func() time.Time, probes ...HealthProbe) *HealthController {
	if now == nil {
		now = time.Now
	}
	return &HealthController{
		probes: probes,
		now:    now,
	}
}

// Check handles GET /health requests.
// The endpoint always answers 200 while the process is serving; a failing
// probe only marks the service as degraded.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	status := "ok"
	components := make(map[string]string, len(h.probes))
	for _, probe := range h.probes {
		if err := probe.Check(ctx); err != nil {
			components[probe.Name] = "unavailable"
			status = "degraded"
			continue
		}
		components[probe.Name] = "ok"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     status,
		Components: components,
		Timestamp:  h.now().UTC().Format(time.RFC3339),
	})
}
