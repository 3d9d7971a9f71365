// Package scheduler runs the background snapshot worker that keeps the
// per-platform gauges current without waiting for an API request.
package scheduler

import (
	"context"
	"time"

	"pulseboard/internal/analytics"
	"pulseboard/internal/metrics"
	"pulseboard/pkg/logging"
)

// SnapshotWorker periodically recomputes platform usage and exports the
// per-platform gauges
type SnapshotWorker struct {
	engine   *analytics.Engine
	metrics  *metrics.Metrics
	logger   logging.Logger
	interval time.Duration
}

// NewSnapshotWorker creates a snapshot worker. A non-positive interval
// falls back to five minutes.
func NewSnapshotWorker(e *analytics.Engine, m *metrics.Metrics, l logging.Logger, interval time.Duration) *SnapshotWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SnapshotWorker{
		engine:   e,
		metrics:  m,
		logger:   l,
		interval: interval,
	}
}

// Start runs the snapshot loop until the context is cancelled
func (w *SnapshotWorker) Start(ctx context.Context) {
	w.logger.WithField("interval", w.interval.String()).Info("Starting platform snapshot worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start
	w.snapshot(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping platform snapshot worker")
			return
		case <-ticker.C:
			w.snapshot(ctx)
		}
	}
}

func (w *SnapshotWorker) snapshot(ctx context.Context) {
	report, err := w.engine.PlatformUsage(ctx, nil)
	if err != nil {
		w.logger.WithError(err).Error("Failed to snapshot platform usage")
		return
	}

	for name, stats := range report.Platforms {
		w.metrics.PlatformPosts.WithLabelValues(name).Set(float64(stats.TotalPosts))
		w.metrics.PlatformActivityScore.WithLabelValues(name).Set(stats.ActivityScore)
	}

	w.logger.WithField("total_posts", report.TotalPosts).Debug("Exported platform snapshot")
}
