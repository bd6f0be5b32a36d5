package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/httputil"
)

// RequestIDHeader is the HTTP header used to propagate the request ID.
const RequestIDHeader = "X-Request-ID"

// clientRequestIDKey holds the caller-supplied ID, kept for correlation only.
const clientRequestIDKey = "client_request_id"

// RequestID assigns every request a fresh server-side UUID. A client-supplied
// X-Request-ID is kept as "client_request_id" for log correlation and is never
// trusted as the canonical ID.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			if len(clientID) > 128 {
				clientID = clientID[:128]
			}

			log.WithFields(logrus.Fields{
				httputil.RequestIDKey: id,
				clientRequestIDKey:    clientID,
			}).Debug("client request ID mapped to server ID")
			c.Set(clientRequestIDKey, clientID)
		}

		c.Set(httputil.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
