// Package api provides HTTP handlers for the route service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/models"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	graph         GraphStatser
	db            HealthChecker
	log           *logrus.Logger
	version       string
	schemaVersion int
	startTime     time.Time
}

// NewHealthHandler creates a HealthHandler. db may be nil when snapshots are
// not configured.
func NewHealthHandler(graph GraphStatser, db HealthChecker, log *logrus.Logger, version string, schemaVersion int) *HealthHandler {
	return &HealthHandler{
		graph:         graph,
		db:            db,
		log:           log,
		version:       version,
		schemaVersion: schemaVersion,
		startTime:     time.Now(),
	}
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string             `json:"status"`
	Version       string             `json:"version"`
	Graph         *models.GraphStats `json:"graph"`
	Snapshots     string             `json:"snapshots"`
	SchemaVersion int                `json:"schema_version,omitempty"`
	UptimeSeconds float64            `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health. It always answers 200 while the
// process is serving; graph and snapshot state are informational.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Snapshots:     h.snapshotState(c.Request.Context()),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.db != nil {
		resp.SchemaVersion = h.schemaVersion
	}

	if stats, err := h.graph.Stats(); err == nil {
		resp.Graph = stats
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. The service is ready once a graph is
// loaded; an unreachable snapshot database only degrades it.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"graph":     "ok",
		"snapshots": h.snapshotState(c.Request.Context()),
	}
	status := "ready"
	statusCode := http.StatusOK

	if _, err := h.graph.Stats(); err != nil {
		h.log.WithError(err).Warn("readiness: graph not loaded")
		checks["graph"] = "not_loaded"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}

// snapshotState reports the snapshot database as not_configured, connected
// or disconnected.
func (h *HealthHandler) snapshotState(ctx context.Context) string {
	if h.db == nil {
		return "not_configured"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		h.log.WithError(err).Warn("snapshot database health check failed")

		return "disconnected"
	}

	return "connected"
}
