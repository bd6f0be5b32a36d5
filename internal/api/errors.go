package api

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/landroute/internal/httputil"
	"github.com/persistorai/landroute/internal/metrics"
)

// Error code constants for standardized API responses.
const (
	ErrCodeUnknownCountry = "unknown_country"
	ErrCodeNoRoute        = "no_route"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeUnavailable    = "unavailable"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}
