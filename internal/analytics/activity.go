package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pulseboard/pkg/database"
	"pulseboard/pkg/models"
)

// activityHistoryLimit caps the per-platform post list in a user's history
const activityHistoryLimit = 50

// UserActivity returns one user's recent posts across all platforms plus
// aggregate statistics. Per-platform failures leave that platform out of
// the report; an unknown user id still yields a report with zero activity.
func (e *Engine) UserActivity(ctx context.Context, userID int64) (*models.UserActivityReport, error) {
	start := time.Now()
	defer func() { e.observe("user_activity", start, nil) }()

	report := &models.UserActivityReport{
		UserID:      userID,
		Platforms:   make(map[string]models.PlatformActivity, len(models.AllPlatforms)),
		GeneratedAt: time.Now().UTC(),
	}

	var successRateSum float64
	var mostActive string
	var mostActivePosts int

	for _, p := range models.AllPlatforms {
		activity, err := e.platformActivity(ctx, p, userID)
		if err != nil {
			e.failPlatform("user_activity", p, err)
			continue
		}
		if activity.TotalPosts == 0 {
			continue
		}
		report.Platforms[p.String()] = activity
		report.UserStatistics.TotalPosts += activity.TotalPosts
		report.UserStatistics.PlatformsUsed++
		successRateSum += activity.SuccessRate
		if activity.TotalPosts > mostActivePosts {
			mostActivePosts = activity.TotalPosts
			mostActive = p.String()
		}
	}

	if report.UserStatistics.PlatformsUsed > 0 {
		report.UserStatistics.AvgSuccessRate = round2(successRateSum / float64(report.UserStatistics.PlatformsUsed))
	}
	report.UserStatistics.MostActivePlatform = mostActive
	report.UserStatistics.UserEngagementLevel = engagementLevel(
		report.UserStatistics.TotalPosts, report.UserStatistics.PlatformsUsed)

	registered, err := e.registrationDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user %d: %w", userID, err)
	}
	report.UserStatistics.RegistrationDate = registered

	return report, nil
}

// platformActivity loads the user's most recent posts on one platform. Both
// the total and the success rate cover only the capped list.
func (e *Engine) platformActivity(ctx context.Context, p models.Platform, userID int64) (models.PlatformActivity, error) {
	cols := []string{"id", "created_at", "COALESCE(status, '')", "COALESCE(error_message, '')"}
	contentCol, hasContent := p.ContentColumn()
	if hasContent {
		cols = append(cols, fmt.Sprintf("COALESCE(%s, '')", contentCol))
	}
	extras := p.ExtraColumns()
	for _, c := range extras {
		cols = append(cols, fmt.Sprintf("COALESCE(%s, '')", c))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT %d`, strings.Join(cols, ", "), p.Table(), activityHistoryLimit)

	rows, err := e.db.QueryContext(ctx, query, userID)
	if err != nil {
		return models.PlatformActivity{}, err
	}
	defer rows.Close()

	activity := models.PlatformActivity{Posts: []models.ActivityPost{}}
	posted := 0
	for rows.Next() {
		post := models.ActivityPost{}
		var content string
		extraVals := make([]string, len(extras))

		dest := []interface{}{&post.ID, &post.CreatedAt, &post.Status, &post.ErrorMessage}
		if hasContent {
			dest = append(dest, &content)
		}
		for i := range extraVals {
			dest = append(dest, &extraVals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return models.PlatformActivity{}, err
		}

		post.Content = content
		if len(extras) > 0 {
			post.Extras = make(map[string]string, len(extras))
			for i, c := range extras {
				post.Extras[c] = extraVals[i]
			}
		}

		activity.Posts = append(activity.Posts, post)
		if post.Status == models.StatusPosted {
			posted++
		}
	}
	if err := rows.Err(); err != nil {
		return models.PlatformActivity{}, err
	}

	activity.TotalPosts = len(activity.Posts)
	activity.SuccessRate = successRate(posted, activity.TotalPosts)
	return activity, nil
}

// registrationDate looks up when the user signed up. A missing row is not
// an error; the report just carries a nil date.
func (e *Engine) registrationDate(ctx context.Context, userID int64) (*time.Time, error) {
	var created sql.NullTime
	err := e.db.QueryRowContext(ctx,
		`SELECT date_created FROM users WHERE id = $1`, userID,
	).Scan(&created)
	if errors.Is(err, database.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !created.Valid {
		return nil, nil
	}
	return &created.Time, nil
}

// engagementLevel classifies a user by cross-platform posting volume
func engagementLevel(totalPosts, platformsUsed int) string {
	switch {
	case totalPosts >= 20 && platformsUsed >= 3:
		return "High"
	case totalPosts >= 10 || platformsUsed >= 2:
		return "Medium"
	case totalPosts >= 1:
		return "Low"
	default:
		return "Inactive"
	}
}
