package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pulseboard/pkg/models"
)

// Engagement level thresholds over a user's total posts in the window
const (
	highEngagementMinPosts   = 10
	mediumEngagementMinPosts = 3
	topUsersLimit            = 10
)

// userActivityTotals accumulates one user's posting volume across platforms
type userActivityTotals struct {
	posts     int
	platforms int
}

// UserEngagement computes cross-platform engagement metrics for an optional
// inclusive window. The registered-user count failing is a total failure;
// per-platform query failures only zero out that platform's contribution.
func (e *Engine) UserEngagement(ctx context.Context, w *Window) (report *models.UserEngagementReport, err error) {
	start := time.Now()
	defer func() { e.observe("user_engagement", start, err) }()

	var totalRegistered int
	if err = e.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE is_active = TRUE`,
	).Scan(&totalRegistered); err != nil {
		return nil, fmt.Errorf("count registered users: %w", err)
	}

	totals := make(map[int64]*userActivityTotals)
	for _, p := range models.AllPlatforms {
		if perr := e.accumulateUserTotals(ctx, p, w, totals); perr != nil {
			e.failPlatform("user_engagement", p, perr)
		}
	}

	report = &models.UserEngagementReport{
		TotalRegisteredUsers: totalRegistered,
		ActiveUsers:          len(totals),
		GeneratedAt:          time.Now().UTC(),
	}

	totalPostsByActive := 0
	for _, t := range totals {
		totalPostsByActive += t.posts
		switch {
		case t.posts >= highEngagementMinPosts:
			report.EngagementLevels.HighEngagement++
		case t.posts >= mediumEngagementMinPosts:
			report.EngagementLevels.MediumEngagement++
		default:
			report.EngagementLevels.LowEngagement++
		}
		if t.platforms > 1 {
			report.MultiPlatformUsers++
		}
	}
	report.EngagementLevels.Inactive = totalRegistered - report.ActiveUsers

	if totalRegistered > 0 {
		report.ActivationRate = round2(100 * float64(report.ActiveUsers) / float64(totalRegistered))
	}
	if report.ActiveUsers > 0 {
		report.MultiPlatformRate = round2(100 * float64(report.MultiPlatformUsers) / float64(report.ActiveUsers))
		report.AvgPostsPerActiveUser = round2(float64(totalPostsByActive) / float64(report.ActiveUsers))
	}

	report.TopUsers = topUsers(totals, topUsersLimit)
	return report, nil
}

// accumulateUserTotals adds one platform's per-user post counts into
// totals. Counts are staged in a platform-local map and merged only once
// the result set is fully read, so a mid-stream failure leaves totals
// untouched and the platform contributes nothing.
func (e *Engine) accumulateUserTotals(ctx context.Context, p models.Platform, w *Window, totals map[int64]*userActivityTotals) error {
	query := fmt.Sprintf(`SELECT user_id, COUNT(*) FROM %s`, p.Table())
	cond, args := windowCond(w, "created_at", 1)
	if cond != "" {
		query += " WHERE " + cond
	}
	query += " GROUP BY user_id"

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var userID int64
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			return err
		}
		counts[userID] = count
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for userID, count := range counts {
		t, ok := totals[userID]
		if !ok {
			t = &userActivityTotals{}
			totals[userID] = t
		}
		t.posts += count
		t.platforms++
	}
	return nil
}

// topUsers returns the limit most active users, posts descending with user
// id ascending as the tie break so output is deterministic
func topUsers(totals map[int64]*userActivityTotals, limit int) []models.TopUser {
	users := make([]models.TopUser, 0, len(totals))
	for userID, t := range totals {
		users = append(users, models.TopUser{
			UserID:        userID,
			TotalPosts:    t.posts,
			PlatformsUsed: t.platforms,
		})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalPosts != users[j].TotalPosts {
			return users[i].TotalPosts > users[j].TotalPosts
		}
		return users[i].UserID < users[j].UserID
	})
	if len(users) > limit {
		users = users[:limit]
	}
	return users
}
