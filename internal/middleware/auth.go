package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/httputil"
)

// authTimingFloor is the minimum response time for rejected admin requests,
// so failures cannot be timed to probe the token.
const authTimingFloor = 50 * time.Millisecond

// enforceTimingFloor sleeps if needed so the response takes at least authTimingFloor.
func enforceTimingFloor(start time.Time) {
	if elapsed := time.Since(start); elapsed < authTimingFloor {
		time.Sleep(authTimingFloor - elapsed)
	}
}

// AdminAuth guards admin endpoints with a static bearer token. An empty token
// disables the endpoints entirely. Failures are recorded on guard when given.
func AdminAuth(token string, log *logrus.Logger, guard *BruteForceGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			httputil.RespondError(c, http.StatusForbidden, "forbidden", "admin endpoints are disabled")

			return
		}

		start := time.Now()
		defer func() {
			if c.Writer.Status() == http.StatusUnauthorized {
				enforceTimingFloor(start)
			}
		}()

		presented := ExtractBearerToken(c)
		if presented == "" {
			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization header")

			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			log.WithFields(logrus.Fields{
				"client_ip":           c.ClientIP(),
				"path":                c.Request.URL.Path,
				httputil.RequestIDKey: httputil.RequestID(c),
			}).Warn("admin authentication failed")

			if guard != nil {
				guard.RecordFailure(c.ClientIP())
			}

			httputil.RespondError(c, http.StatusUnauthorized, "unauthorized", "invalid admin token")

			return
		}

		if guard != nil {
			guard.Reset(c.ClientIP())
		}

		c.Next()
	}
}

// ExtractBearerToken extracts the token from the Authorization header.
func ExtractBearerToken(c *gin.Context) string {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}
