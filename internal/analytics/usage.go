package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"pulseboard/pkg/models"
)

// PlatformUsage computes per-platform usage statistics for an optional
// inclusive window. A platform whose query fails contributes zero stats;
// the report itself never fails on a per-platform error.
func (e *Engine) PlatformUsage(ctx context.Context, w *Window) (*models.PlatformUsageReport, error) {
	start := time.Now()
	defer func() { e.observe("platform_usage", start, nil) }()

	platforms := make(map[string]models.PlatformUsageStats, len(models.AllPlatforms))
	totalPosts := 0

	for _, p := range models.AllPlatforms {
		stats, err := e.platformUsageStats(ctx, p, w)
		if err != nil {
			e.failPlatform("platform_usage", p, err)
			stats = models.PlatformUsageStats{Platform: p.String()}
		}
		platforms[p.String()] = stats
		totalPosts += stats.TotalPosts
	}

	// Usage percentages and rankings over the whole fleet. The sort is
	// stable so ties keep enumeration order.
	rankings := make([]models.PlatformRanking, 0, len(models.AllPlatforms))
	for _, p := range models.AllPlatforms {
		stats := platforms[p.String()]
		if totalPosts > 0 {
			stats.UsagePercentage = round2(100 * float64(stats.TotalPosts) / float64(totalPosts))
		}
		platforms[p.String()] = stats
		rankings = append(rankings, models.PlatformRanking{Platform: p.String(), TotalPosts: stats.TotalPosts})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalPosts > rankings[j].TotalPosts
	})

	mostUsed := ""
	if totalPosts > 0 {
		mostUsed = rankings[0].Platform
	}

	return &models.PlatformUsageReport{
		Platforms:        platforms,
		PlatformRankings: rankings,
		MostUsedPlatform: mostUsed,
		TotalPosts:       totalPosts,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// platformUsageStats computes one platform's usage statistics. The windowed
// aggregate and the trailing 7/30-day counts are separate queries because
// the trailing counts are always relative to wall clock regardless of the
// requested window.
func (e *Engine) platformUsageStats(ctx context.Context, p models.Platform, w *Window) (models.PlatformUsageStats, error) {
	stats := models.PlatformUsageStats{Platform: p.String()}

	query := fmt.Sprintf(`
		SELECT COUNT(*),
		       COUNT(DISTINCT user_id),
		       COUNT(*) FILTER (WHERE status = '%s'),
		       MIN(created_at),
		       MAX(created_at)
		FROM %s`, models.StatusPosted, p.Table())

	cond, args := windowCond(w, "created_at", 1)
	if cond != "" {
		query += " WHERE " + cond
	}

	var posted int
	var first, last sql.NullTime
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalPosts, &stats.UniqueUsers, &posted, &first, &last,
	); err != nil {
		return models.PlatformUsageStats{Platform: p.String()}, err
	}

	stats.SuccessRate = successRate(posted, stats.TotalPosts)
	if first.Valid {
		stats.FirstPostDate = &first.Time
	}
	if last.Valid {
		stats.LastPostDate = &last.Time
	}

	trailing := fmt.Sprintf(`
		SELECT COUNT(*) FILTER (WHERE created_at >= $1),
		       COUNT(*) FILTER (WHERE created_at >= $2)
		FROM %s`, p.Table())

	now := time.Now()
	if err := e.db.QueryRowContext(ctx, trailing,
		now.AddDate(0, 0, -7), now.AddDate(0, 0, -30),
	).Scan(&stats.PostsLast7Days, &stats.PostsLast30Days); err != nil {
		return models.PlatformUsageStats{Platform: p.String()}, err
	}

	stats.ActivityScore = activityScore(stats.TotalPosts, stats.UniqueUsers, stats.SuccessRate, stats.PostsLast7Days)
	return stats, nil
}

// activityScore blends volume, breadth, reliability and recency into a
// composite in [0, 100]. Each term is capped so no single metric dominates.
func activityScore(totalPosts, uniqueUsers int, successRate float64, postsLast7Days int) float64 {
	score := math.Min(float64(totalPosts)/100, 1)*40 +
		math.Min(float64(uniqueUsers)/50, 1)*30 +
		(successRate/100)*20 +
		math.Min(float64(postsLast7Days)/10, 1)*10
	return round2(score)
}
