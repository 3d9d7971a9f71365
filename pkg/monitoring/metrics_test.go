package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollectorServesRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mc := NewMetricsCollector("test-service", "v1", "abc123")

	r := gin.New()
	r.Use(mc.MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", mc.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// Hyphenated service names are sanitized into the metric prefix
	assert.True(t, strings.Contains(body, "test_service_http_requests_total"))
	assert.True(t, strings.Contains(body, "test_service_build_info"))
}

func TestCustomMetricHelpers(t *testing.T) {
	mc := NewMetricsCollector("svc", "v1", "abc")

	counter := mc.NewCounter("things_total", "Things", []string{"kind"})
	counter.WithLabelValues("a").Inc()
	counter.WithLabelValues("a").Inc()
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues("a")))

	gauge := mc.NewGauge("level", "Level", []string{"kind"})
	gauge.WithLabelValues("b").Set(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(gauge.WithLabelValues("b")))

	// Separate collectors own separate registries, so identical names do
	// not panic
	other := NewMetricsCollector("svc", "v1", "abc")
	other.NewCounter("things_total", "Things", []string{"kind"})
}
