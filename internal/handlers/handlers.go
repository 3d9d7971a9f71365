// Package handlers exposes the analytics reports over HTTP. Handlers only
// parse request parameters and wrap engine results in the response
// envelope; all aggregation lives in the analytics engine.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/analytics"
	"pulseboard/pkg/api/pulseboard"
	"pulseboard/pkg/logging"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365
)

var (
	engine *analytics.Engine
	logger logging.Logger
)

// Init initializes the handlers package with the analytics engine
func Init(e *analytics.Engine, log logging.Logger) {
	engine = e
	logger = log
}

// GetPlatformUsage returns per-platform usage statistics.
// Optional query params: start_date, end_date.
func GetPlatformUsage(c *gin.Context) {
	report, err := engine.PlatformUsage(c.Request.Context(), parseWindow(c))
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compute platform usage")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute platform usage"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetUserEngagement returns cross-platform user engagement metrics.
// Optional query params: start_date, end_date.
func GetUserEngagement(c *gin.Context) {
	report, err := engine.UserEngagement(c.Request.Context(), parseWindow(c))
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compute user engagement")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute user engagement"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetTemporalTrends returns daily, weekly and hourly posting histograms.
// Optional query param: days (1-365, default 30; out-of-range values fall
// back to the default).
func GetTemporalTrends(c *gin.Context) {
	report, err := engine.TemporalTrends(c.Request.Context(), parseDays(c))
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compute temporal trends")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute temporal trends"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetUserActivity returns one user's recent posts across all platforms
func GetUserActivity(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, pulseboard.Err("Invalid user id"))
		return
	}

	report, err := engine.UserActivity(c.Request.Context(), userID)
	if err != nil {
		logger.WithFields(logging.Fields{"error": err, "user_id": userID}).Error("Failed to compute user activity")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute user activity"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetContentAnalysis returns content-length statistics per platform.
// Optional query params: start_date, end_date.
func GetContentAnalysis(c *gin.Context) {
	report, err := engine.ContentAnalysis(c.Request.Context(), parseWindow(c))
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compute content analysis")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute content analysis"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetPredictions returns heuristic posting recommendations.
// Optional query params: start_date, end_date.
func GetPredictions(c *gin.Context) {
	report, err := engine.Predictions(c.Request.Context(), parseWindow(c))
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compute predictions")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compute predictions"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// GetDashboard returns every report composed into one payload.
// Optional query params: start_date, end_date, user_id.
func GetDashboard(c *gin.Context) {
	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, pulseboard.Err("Invalid user id"))
			return
		}
		userID = &id
	}

	report, err := engine.Dashboard(c.Request.Context(), parseWindow(c), userID)
	if err != nil {
		logger.WithFields(logging.Fields{"error": err}).Error("Failed to compose dashboard")
		c.JSON(http.StatusInternalServerError, pulseboard.Err("Failed to compose dashboard"))
		return
	}
	c.JSON(http.StatusOK, pulseboard.OK(report))
}

// parseWindow reads the optional start_date/end_date query params. Dates
// accept RFC3339 or plain YYYY-MM-DD. A missing or malformed pair means no
// window, which reports treat as all time. A date-only end bound is
// advanced to the end of that day, keeping the window inclusive of posts
// made later that date.
func parseWindow(c *gin.Context) *analytics.Window {
	start, _, okStart := parseDate(c.Query("start_date"))
	end, endDateOnly, okEnd := parseDate(c.Query("end_date"))
	if !okStart || !okEnd {
		return nil
	}
	if endDateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &analytics.Window{Start: start, End: end}
}

func parseDate(raw string) (t time.Time, dateOnly, ok bool) {
	if raw == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// parseDays reads the days query param, falling back to the default when
// missing, malformed or outside [1, 365]
func parseDays(c *gin.Context) int {
	raw := c.Query("days")
	if raw == "" {
		return defaultTrendDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxTrendDays {
		return defaultTrendDays
	}
	return days
}
