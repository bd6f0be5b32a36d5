package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/landroute/internal/httputil"
)

// MaxBodySize rejects requests whose declared body exceeds maxBytes and caps
// reads for the rest.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			httputil.RespondError(c, http.StatusRequestEntityTooLarge, "invalid_request", "request body too large")

			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
