package analytics

import (
	"context"
	"time"

	"pulseboard/pkg/models"
)

const defaultTrendsDays = 30

// Dashboard composes every report into a single payload. Each section is
// computed independently; a failing section is left nil and its error
// recorded so the rest of the dashboard still renders. The user activity
// section is only included when userID is non-nil.
func (e *Engine) Dashboard(ctx context.Context, w *Window, userID *int64) (*models.DashboardReport, error) {
	start := time.Now()
	defer func() { e.observe("dashboard", start, nil) }()

	report := &models.DashboardReport{
		SectionErrors: map[string]string{},
		GeneratedAt:   time.Now().UTC(),
	}

	if usage, err := e.PlatformUsage(ctx, w); err != nil {
		report.SectionErrors["platform_usage"] = err.Error()
	} else {
		report.PlatformUsage = usage
	}

	if engagement, err := e.UserEngagement(ctx, w); err != nil {
		report.SectionErrors["user_engagement"] = err.Error()
	} else {
		report.UserEngagement = engagement
	}

	days := defaultTrendsDays
	if w != nil {
		days = w.Days()
	}
	if trends, err := e.TemporalTrends(ctx, days); err != nil {
		report.SectionErrors["temporal_trends"] = err.Error()
	} else {
		report.TemporalTrends = trends
	}

	if content, err := e.ContentAnalysis(ctx, w); err != nil {
		report.SectionErrors["content_analysis"] = err.Error()
	} else {
		report.ContentAnalysis = content
	}

	if predictions, err := e.Predictions(ctx, w); err != nil {
		report.SectionErrors["predictions"] = err.Error()
	} else {
		report.Predictions = predictions
	}

	if userID != nil {
		if activity, err := e.UserActivity(ctx, *userID); err != nil {
			report.SectionErrors["user_activity"] = err.Error()
		} else {
			report.UserActivity = activity
		}
	}

	if len(report.SectionErrors) == 0 {
		report.SectionErrors = nil
	}
	return report, nil
}
