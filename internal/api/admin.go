package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/httputil"
)

// RefreshTimeout bounds how long an admin refresh request waits. The server's
// write timeout must exceed it or the reply is lost.
const RefreshTimeout = 75 * time.Second

// AdminHandler serves administrative endpoints.
type AdminHandler struct {
	refresher GraphRefresher
	log       *logrus.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(refresher GraphRefresher, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{refresher: refresher, log: log}
}

// Refresh handles POST /api/v1/admin/refresh. A failed refresh leaves the
// current graph in place and reports 503.
func (h *AdminHandler) Refresh(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), RefreshTimeout)
	defer cancel()

	stats, err := h.refresher.Refresh(ctx)
	if err != nil {
		h.log.WithError(err).Warn("admin refresh failed")
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "refresh failed; previous graph retained")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":              "admin.refresh",
		"countries":           stats.Countries,
		"edges":               stats.Edges,
		httputil.RequestIDKey: httputil.RequestID(c),
	}).Info("audit")

	c.JSON(http.StatusOK, stats)
}
