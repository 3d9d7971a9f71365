package analytics

import (
	"context"
	"fmt"
	"time"

	"pulseboard/pkg/models"
)

// TemporalTrends computes daily, weekly and hourly posting histograms per
// platform over the trailing days. A platform whose queries fail is
// represented with empty series instead of failing the report.
func (e *Engine) TemporalTrends(ctx context.Context, days int) (*models.TemporalTrendsReport, error) {
	start := time.Now()
	defer func() { e.observe("temporal_trends", start, nil) }()

	since := time.Now().AddDate(0, 0, -days)
	report := &models.TemporalTrendsReport{
		PeriodDays:     days,
		DailyTrends:    make(map[string][]models.DailyTrend, len(models.AllPlatforms)),
		WeeklyPatterns: make(map[string]map[int]int, len(models.AllPlatforms)),
		HourlyPatterns: make(map[string]map[int]int, len(models.AllPlatforms)),
		GeneratedAt:    time.Now().UTC(),
	}

	for _, p := range models.AllPlatforms {
		daily, err := e.dailyTrends(ctx, p, since)
		if err != nil {
			e.failPlatform("temporal_trends", p, err)
			report.DailyTrends[p.String()] = []models.DailyTrend{}
			report.WeeklyPatterns[p.String()] = map[int]int{}
			report.HourlyPatterns[p.String()] = map[int]int{}
			continue
		}
		report.DailyTrends[p.String()] = daily

		weekly, err := e.bucketCounts(ctx, p, "EXTRACT(DOW FROM created_at)::int", since)
		if err != nil {
			e.failPlatform("temporal_trends", p, err)
			weekly = map[int]int{}
		}
		report.WeeklyPatterns[p.String()] = weekly

		hourly, err := e.bucketCounts(ctx, p, "EXTRACT(HOUR FROM created_at)::int", since)
		if err != nil {
			e.failPlatform("temporal_trends", p, err)
			hourly = map[int]int{}
		}
		report.HourlyPatterns[p.String()] = hourly
	}

	return report, nil
}

// dailyTrends returns per-day post and distinct-user counts since the cutoff
func (e *Engine) dailyTrends(ctx context.Context, p models.Platform, since time.Time) ([]models.DailyTrend, error) {
	query := fmt.Sprintf(`
		SELECT DATE(created_at)::text, COUNT(*), COUNT(DISTINCT user_id)
		FROM %s
		WHERE created_at >= $1
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)`, p.Table())

	rows, err := e.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := []models.DailyTrend{}
	for rows.Next() {
		var t models.DailyTrend
		if err := rows.Scan(&t.Date, &t.Posts, &t.Users); err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// bucketCounts groups posts since the cutoff by the given integer bucket
// expression, e.g. day of week or hour of day
func (e *Engine) bucketCounts(ctx context.Context, p models.Platform, bucketExpr string, since time.Time) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM %s
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1`, bucketExpr, p.Table())

	rows, err := e.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var bucket, n int
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, err
		}
		counts[bucket] = n
	}
	return counts, rows.Err()
}
