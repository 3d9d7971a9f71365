// Package analytics implements the cross-platform aggregation engine. It
// reads the per-platform post tables and the users table, and computes
// derived statistics on demand. The engine never writes and holds no state
// beyond the database handle, so every method is safe for concurrent use.
package analytics

import (
	"fmt"
	"math"
	"time"

	"pulseboard/internal/metrics"
	"pulseboard/pkg/database"
	"pulseboard/pkg/logging"
	"pulseboard/pkg/models"
)

// Engine computes analytics reports from the platform post store
type Engine struct {
	db      database.PostgresConn
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewEngine creates an analytics engine. The metrics set may be nil.
func NewEngine(db database.PostgresConn, logger logging.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		db:      db,
		logger:  logger,
		metrics: m,
	}
}

// Window is an inclusive time range restricting a report. A nil *Window
// means all time.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the window length in whole days, at least 1
func (w *Window) Days() int {
	days := int(w.End.Sub(w.Start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// windowCond returns a SQL condition over col for the window, without a
// WHERE/AND prefix, and its bind arguments. Placeholder numbering starts
// at startIdx. An empty string is returned for a nil window.
func windowCond(w *Window, col string, startIdx int) (string, []interface{}) {
	if w == nil {
		return "", nil
	}
	cond := fmt.Sprintf("%s >= $%d AND %s <= $%d", col, startIdx, col, startIdx+1)
	return cond, []interface{}{w.Start, w.End}
}

// failPlatform records a per-platform query failure. Missing tables are
// expected in deployments without that platform and log at debug level;
// everything else logs as an error. Either way the caller substitutes a
// zero-valued result and the report proceeds.
func (e *Engine) failPlatform(report string, platform models.Platform, err error) {
	reason := "query_error"
	if database.IsUndefinedTable(err) {
		reason = "missing_table"
	}

	entry := e.logger.WithFields(logging.Fields{
		"report":   report,
		"platform": platform.String(),
		"reason":   reason,
		"error":    err,
	})
	if reason == "missing_table" {
		entry.Debug("Platform table absent, substituting zero stats")
	} else {
		entry.Error("Platform query failed, substituting zero stats")
	}

	if e.metrics != nil {
		e.metrics.PlatformQueryFailures.WithLabelValues(platform.String(), reason).Inc()
	}
}

// observe records a completed report computation
func (e *Engine) observe(report string, start time.Time, err error) {
	if e.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	e.metrics.ReportQueries.WithLabelValues(report, status).Inc()
	e.metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// successRate returns 100*posted/total rounded to two decimals, 0 when
// total is zero
func successRate(posted, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(100 * float64(posted) / float64(total))
}
