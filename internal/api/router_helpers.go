package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/httputil"
	"github.com/persistorai/landroute/internal/models"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid := httputil.RequestID(c); rid != "" {
			fields[httputil.RequestIDKey] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// pathCode reads a country code path parameter and canonicalises it.
func pathCode(c *gin.Context, name string) (string, error) {
	code := models.NormalizeCode(c.Param(name))
	if err := models.ValidateCode(code); err != nil {
		return "", err
	}

	return code, nil
}
