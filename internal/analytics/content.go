package analytics

import (
	"context"
	"fmt"
	"time"

	"pulseboard/pkg/models"
)

// ContentAnalysis computes character-length statistics over each platform's
// content column for an optional inclusive window. Platforms without a
// content column are skipped; per-platform query failures fold to zero
// stats for that platform.
func (e *Engine) ContentAnalysis(ctx context.Context, w *Window) (*models.ContentAnalysisReport, error) {
	start := time.Now()
	defer func() { e.observe("content_analysis", start, nil) }()

	report := &models.ContentAnalysisReport{
		Platforms:   make(map[string]models.ContentStats),
		GeneratedAt: time.Now().UTC(),
	}

	for _, p := range models.AllPlatforms {
		col, ok := p.ContentColumn()
		if !ok {
			continue
		}
		stats, err := e.contentStats(ctx, p, col, w)
		if err != nil {
			e.failPlatform("content_analysis", p, err)
			stats = models.ContentStats{}
		}
		report.Platforms[p.String()] = stats
	}

	return report, nil
}

// contentStats computes length statistics over non-empty content rows
func (e *Engine) contentStats(ctx context.Context, p models.Platform, col string, w *Window) (models.ContentStats, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(LENGTH(%s)), 0),
		       COALESCE(MIN(LENGTH(%s)), 0),
		       COALESCE(MAX(LENGTH(%s)), 0),
		       COUNT(*)
		FROM %s
		WHERE %s IS NOT NULL AND %s <> ''`, col, col, col, p.Table(), col, col)

	cond, args := windowCond(w, "created_at", 1)
	if cond != "" {
		query += " AND " + cond
	}

	var stats models.ContentStats
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.AvgLength, &stats.MinLength, &stats.MaxLength, &stats.TotalPostsWithContent,
	); err != nil {
		return models.ContentStats{}, err
	}
	stats.AvgLength = round2(stats.AvgLength)
	return stats, nil
}
