package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"pulseboard/pkg/monitoring"
)

// Metrics holds all Prometheus metrics for the analytics service
type Metrics struct {
	ReportQueries         *prometheus.CounterVec   // report computations by report type and status
	ReportDuration        *prometheus.HistogramVec // report computation duration by report type
	PlatformQueryFailures *prometheus.CounterVec   // per-platform query failures folded to zero, by platform and reason
	PlatformPosts         *prometheus.GaugeVec     // last snapshot of total posts per platform
	PlatformActivityScore *prometheus.GaugeVec     // last snapshot of activity score per platform
}

// New creates and registers all analytics metrics on the collector
func New(collector *monitoring.MetricsCollector) *Metrics {
	return &Metrics{
		ReportQueries: collector.NewCounter(
			"report_queries_total",
			"Total report computations by report type and status",
			[]string{"report", "status"},
		),
		ReportDuration: collector.NewHistogram(
			"report_duration_seconds",
			"Report computation duration by report type",
			[]string{"report"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		),
		PlatformQueryFailures: collector.NewCounter(
			"platform_query_failures_total",
			"Per-platform query failures folded to zero stats, by platform and reason",
			[]string{"platform", "reason"},
		),
		PlatformPosts: collector.NewGauge(
			"platform_posts",
			"Last snapshot of total posts per platform",
			[]string{"platform"},
		),
		PlatformActivityScore: collector.NewGauge(
			"platform_activity_score",
			"Last snapshot of activity score per platform",
			[]string{"platform"},
		),
	}
}
