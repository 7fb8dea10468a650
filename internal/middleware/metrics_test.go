package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-bulk-import/internal/metrics"
)

func metricsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, "metrics data") })

	v1 := router.Group("/api/v1", Tenant())
	v1.GET("/imports/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	v1.POST("/imports", func(c *gin.Context) { c.Status(http.StatusAccepted) })
	return router
}

func requestCount(group, method, path, status string) float64 {
	return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(group, method, path, status))
}

// bodySamples returns how many body sizes were observed for method and path.
func bodySamples(t *testing.T, method, path string) uint64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "tenant_bulk_import_http_request_body_bytes" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["path"] == path {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func TestMetricsMiddleware(t *testing.T) {
	router := metricsRouter()

	t.Run("tenant routes are labeled by template", func(t *testing.T) {
		before := requestCount(GroupTenant, "GET", "/api/v1/imports/:id", "404")
		inFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/4f1c", nil)
		req.Header.Set(TenantIDHeader, "tenant-a")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, before+1, requestCount(GroupTenant, "GET", "/api/v1/imports/:id", "404"))
		assert.Equal(t, inFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("requests rejected for a missing tenant stay in the tenant group", func(t *testing.T) {
		before := requestCount(GroupTenant, "POST", "/api/v1/imports", "400")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/imports", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before+1, requestCount(GroupTenant, "POST", "/api/v1/imports", "400"))
	})

	t.Run("upload body size is observed", func(t *testing.T) {
		before := bodySamples(t, "POST", "/api/v1/imports")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", strings.NewReader("name,email\nA,a@x.com\n"))
		req.Header.Set(TenantIDHeader, "tenant-a")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, before+1, bodySamples(t, "POST", "/api/v1/imports"))
	})

	t.Run("operational endpoints use the ops group", func(t *testing.T) {
		before := requestCount(GroupOps, "GET", "/health", "200")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, before+1, requestCount(GroupOps, "GET", "/health", "200"))
	})

	t.Run("unmatched paths share one label", func(t *testing.T) {
		before := requestCount(GroupUnmatched, "GET", GroupUnmatched, "404")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wp-login.php", nil))

		assert.Equal(t, before+1, requestCount(GroupUnmatched, "GET", GroupUnmatched, "404"))
	})

	t.Run("metrics endpoint is not recorded", func(t *testing.T) {
		before := requestCount(GroupOps, "GET", "/metrics", "200")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before, requestCount(GroupOps, "GET", "/metrics", "200"))
	})
}

func TestRouteLabels(t *testing.T) {
	tests := []struct {
		fullPath  string
		wantPath  string
		wantGroup string
	}{
		{"/api/v1/imports", "/api/v1/imports", GroupTenant},
		{"/api/v1/templates/:type", "/api/v1/templates/:type", GroupTenant},
		{"/ready", "/ready", GroupOps},
		{"", GroupUnmatched, GroupUnmatched},
	}
	for _, tt := range tests {
		path, group := routeLabels(tt.fullPath)
		assert.Equal(t, tt.wantPath, path, tt.fullPath)
		assert.Equal(t, tt.wantGroup, group, tt.fullPath)
	}
}
