package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tenant-bulk-import/internal/logger"
)

// AccessLog logs one line per request once the handler chain has finished.
// Health checks and the metrics endpoint are logged at debug level.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		log := logger.WithRequestID(GetRequestID(c)).With(
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if tenantID := GetTenantID(c); tenantID != "" {
			log = log.With("tenant_id", tenantID)
		}

		switch {
		case path == "/metrics" || path == "/health" || path == "/ready" || path == "/live":
			log.Debug("request")
		case c.Writer.Status() >= 500:
			log.Error("request", "errors", c.Errors.String())
		default:
			log.Info("request")
		}
	}
}
