// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tenant-bulk-import/internal/metrics"
)

// Route groups used as the "group" label.
const (
	GroupTenant    = "tenant"
	GroupOps       = "ops"
	GroupUnmatched = "unmatched"
)

const tenantRoutePrefix = "/api/"

// Metrics records request count, latency and in-flight requests labeled by
// route template, plus the declared body size of requests that carry one.
// Tenant scoped API routes and operational endpoints are kept apart by the
// group label. The /metrics endpoint itself is not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		method := c.Request.Method
		path, group := routeLabels(c.FullPath())
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(group, method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if c.Request.ContentLength > 0 {
			metrics.HTTPRequestBytes.WithLabelValues(method, path).Observe(float64(c.Request.ContentLength))
		}
	}
}

// routeLabels returns the path label and route group for a route template.
// Unmatched requests share one label so raw URLs never become series.
func routeLabels(fullPath string) (path, group string) {
	switch {
	case fullPath == "":
		return GroupUnmatched, GroupUnmatched
	case strings.HasPrefix(fullPath, tenantRoutePrefix):
		return fullPath, GroupTenant
	default:
		return fullPath, GroupOps
	}
}
