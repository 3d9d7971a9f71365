package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pulseboard/pkg/models"
)

const (
	topHoursLimit    = 5
	topTopicsLimit   = 15
	topicSampleLimit = 200
)

// Predictions derives heuristic posting recommendations from recent usage:
// which platforms are performing best, which hours see the most posting,
// and which content tokens recur most. These are rankings over observed
// data, not a trained model.
func (e *Engine) Predictions(ctx context.Context, w *Window) (*models.PredictionsReport, error) {
	start := time.Now()
	defer func() { e.observe("predictions", start, nil) }()

	usage, err := e.PlatformUsage(ctx, w)
	if err != nil {
		return nil, err
	}

	report := &models.PredictionsReport{
		BestPlatforms:    bestPlatforms(usage),
		BestPostingHours: e.bestPostingHours(ctx, w),
		TopContentTopics: e.topContentTopics(ctx, w),
		GeneratedAt:      time.Now().UTC(),
	}
	return report, nil
}

// bestPlatforms ranks platforms by a blend of activity score and success
// rate. Ties keep enumeration order via the stable sort.
func bestPlatforms(usage *models.PlatformUsageReport) []models.PlatformScore {
	scores := make([]models.PlatformScore, 0, len(models.AllPlatforms))
	for _, p := range models.AllPlatforms {
		stats := usage.Platforms[p.String()]
		scores = append(scores, models.PlatformScore{
			Platform:      p.String(),
			Score:         round2(stats.ActivityScore + stats.SuccessRate/5),
			ActivityScore: stats.ActivityScore,
			SuccessRate:   stats.SuccessRate,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// bestPostingHours aggregates hourly posting counts across all platforms
// and returns the busiest hours, posts descending with hour ascending as
// the tie break
func (e *Engine) bestPostingHours(ctx context.Context, w *Window) []models.PostingHour {
	combined := map[int]int{}
	for _, p := range models.AllPlatforms {
		hourly, err := e.windowedBucketCounts(ctx, p, "EXTRACT(HOUR FROM created_at)::int", w)
		if err != nil {
			e.failPlatform("predictions", p, err)
			continue
		}
		for hour, n := range hourly {
			combined[hour] += n
		}
	}

	hours := make([]models.PostingHour, 0, len(combined))
	for hour, n := range combined {
		hours = append(hours, models.PostingHour{Hour: hour, Posts: n})
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].Posts != hours[j].Posts {
			return hours[i].Posts > hours[j].Posts
		}
		return hours[i].Hour < hours[j].Hour
	})
	if len(hours) > topHoursLimit {
		hours = hours[:topHoursLimit]
	}
	return hours
}

// windowedBucketCounts is bucketCounts with an optional window instead of
// a fixed cutoff
func (e *Engine) windowedBucketCounts(ctx context.Context, p models.Platform, bucketExpr string, w *Window) (map[int]int, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s`, bucketExpr, p.Table())
	cond, args := windowCond(w, "created_at", 1)
	if cond != "" {
		query += " WHERE " + cond
	}
	query += " GROUP BY 1 ORDER BY 1"

	rows, err := e.db.QueryContext(ctx, query, args...)
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

// topContentTopics counts content tokens over a bounded sample of recent
// posts per platform and returns the most frequent, count descending with
// token ascending as the tie break
func (e *Engine) topContentTopics(ctx context.Context, w *Window) []models.ContentTopic {
	counts := map[string]int{}
	for _, p := range models.AllPlatforms {
		col, ok := p.ContentColumn()
		if !ok {
			continue
		}
		if err := e.sampleContent(ctx, p, col, w, counts); err != nil {
			e.failPlatform("predictions", p, err)
		}
	}

	topics := make([]models.ContentTopic, 0, len(counts))
	for token, n := range counts {
		topics = append(topics, models.ContentTopic{Topic: token, Count: n})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})
	if len(topics) > topTopicsLimit {
		topics = topics[:topTopicsLimit]
	}
	return topics
}

// sampleContent tokenizes up to topicSampleLimit recent posts' content
// into counts
func (e *Engine) sampleContent(ctx context.Context, p models.Platform, col string, w *Window, counts map[string]int) error {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NOT NULL AND %s <> ''`, col, p.Table(), col, col)

	cond, args := windowCond(w, "created_at", 1)
	if cond != "" {
		query += " AND " + cond
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", topicSampleLimit)

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return err
		}
		countTokens(text, counts)
	}
	return rows.Err()
}
