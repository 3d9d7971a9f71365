package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectUsageStats(mock sqlmock.Sqlmock, table string, total, unique, posted int, first, last interface{}, last7, last30 int) {
	mock.ExpectQuery("FROM " + table).WillReturnRows(
		sqlmock.NewRows([]string{"total", "unique", "posted", "first", "last"}).
			AddRow(total, unique, posted, first, last))
	mock.ExpectQuery("FROM " + table).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"last7", "last30"}).AddRow(last7, last30))
}

func expectEmptyUsageStats(mock sqlmock.Sqlmock, table string) {
	expectUsageStats(mock, table, 0, 0, 0, nil, nil, 0, 0)
}

func TestPlatformUsage(t *testing.T) {
	engine, mock := newTestEngine(t)

	first := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2026, 8, 30, 19, 30, 0, 0, time.UTC)

	expectUsageStats(mock, "instagram_posts", 3, 2, 2, first, last, 1, 3)
	expectUsageStats(mock, "facebook_posts", 1, 1, 1, first, last, 0, 1)
	expectEmptyUsageStats(mock, "x_posts")
	expectEmptyUsageStats(mock, "reddit_posts")
	expectEmptyUsageStats(mock, "pinterest_posts")
	expectEmptyUsageStats(mock, "youtube_posts")

	report, err := engine.PlatformUsage(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 4, report.TotalPosts)
	assert.Equal(t, "instagram", report.MostUsedPlatform)
	assert.Len(t, report.Platforms, 6)

	instagram := report.Platforms["instagram"]
	assert.Equal(t, 3, instagram.TotalPosts)
	assert.Equal(t, 2, instagram.UniqueUsers)
	assert.Equal(t, 66.67, instagram.SuccessRate)
	assert.Equal(t, 75.0, instagram.UsagePercentage)
	require.NotNil(t, instagram.FirstPostDate)
	assert.True(t, instagram.FirstPostDate.Equal(first))
	require.NotNil(t, instagram.LastPostDate)
	assert.True(t, instagram.LastPostDate.Equal(last))

	facebook := report.Platforms["facebook"]
	assert.Equal(t, 100.0, facebook.SuccessRate)
	assert.Equal(t, 25.0, facebook.UsagePercentage)

	// Percentages of all platforms account for every post
	sum := 0.0
	for _, stats := range report.Platforms {
		sum += stats.UsagePercentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)

	// Rankings cover every platform, sorted by volume
	require.Len(t, report.PlatformRankings, 6)
	assert.Equal(t, "instagram", report.PlatformRankings[0].Platform)
	assert.Equal(t, "facebook", report.PlatformRankings[1].Platform)
	for i := 1; i < len(report.PlatformRankings); i++ {
		assert.GreaterOrEqual(t,
			report.PlatformRankings[i-1].TotalPosts,
			report.PlatformRankings[i].TotalPosts)
	}

	for _, stats := range report.Platforms {
		assert.GreaterOrEqual(t, stats.ActivityScore, 0.0)
		assert.LessOrEqual(t, stats.ActivityScore, 100.0)
	}
}

func TestPlatformUsageSingleActivePlatform(t *testing.T) {
	engine, mock := newTestEngine(t)

	// 3 instagram posts, 2 posted and 1 failed, nothing anywhere else
	expectUsageStats(mock, "instagram_posts", 3, 1, 2, time.Now(), time.Now(), 3, 3)
	for _, table := range []string{"facebook_posts", "x_posts", "reddit_posts", "pinterest_posts", "youtube_posts"} {
		expectEmptyUsageStats(mock, table)
	}

	report, err := engine.PlatformUsage(context.Background(), nil)
	require.NoError(t, err)

	instagram := report.Platforms["instagram"]
	assert.Equal(t, 3, instagram.TotalPosts)
	assert.Equal(t, 66.67, instagram.SuccessRate)
	assert.Equal(t, 100.0, instagram.UsagePercentage)
	assert.Equal(t, "instagram", report.MostUsedPlatform)
	for name, stats := range report.Platforms {
		if name == "instagram" {
			continue
		}
		assert.Equal(t, 0, stats.TotalPosts)
		assert.Equal(t, 0.0, stats.UsagePercentage)
	}
}

func TestPlatformUsageEmpty(t *testing.T) {
	engine, mock := newTestEngine(t)

	for _, table := range []string{"instagram_posts", "facebook_posts", "x_posts", "reddit_posts", "pinterest_posts", "youtube_posts"} {
		expectEmptyUsageStats(mock, table)
	}

	report, err := engine.PlatformUsage(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 0, report.TotalPosts)
	assert.Empty(t, report.MostUsedPlatform)
	for _, stats := range report.Platforms {
		assert.Equal(t, 0.0, stats.SuccessRate)
		assert.Equal(t, 0.0, stats.UsagePercentage)
		assert.Nil(t, stats.FirstPostDate)
	}
}

func TestPlatformUsageMissingTable(t *testing.T) {
	engine, mock := newTestEngine(t)

	mock.ExpectQuery("FROM instagram_posts").
		WillReturnError(&pq.Error{Code: "42P01"})
	expectUsageStats(mock, "facebook_posts", 2, 1, 2, time.Now(), time.Now(), 2, 2)
	expectEmptyUsageStats(mock, "x_posts")
	expectEmptyUsageStats(mock, "reddit_posts")
	expectEmptyUsageStats(mock, "pinterest_posts")
	expectEmptyUsageStats(mock, "youtube_posts")

	report, err := engine.PlatformUsage(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	// The missing platform folds to zero stats instead of failing the report
	instagram := report.Platforms["instagram"]
	assert.Equal(t, 0, instagram.TotalPosts)
	assert.Equal(t, "facebook", report.MostUsedPlatform)
	assert.Equal(t, 2, report.TotalPosts)
}

func TestPlatformUsageWindowed(t *testing.T) {
	engine, mock := newTestEngine(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM instagram_posts WHERE created_at").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"total", "unique", "posted", "first", "last"}).
			AddRow(5, 3, 5, start, end))
	mock.ExpectQuery("FROM instagram_posts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"last7", "last30"}).AddRow(1, 5))
	for _, table := range []string{"facebook_posts", "x_posts", "reddit_posts", "pinterest_posts", "youtube_posts"} {
		mock.ExpectQuery("FROM " + table + " WHERE created_at").
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"total", "unique", "posted", "first", "last"}).
				AddRow(0, 0, 0, nil, nil))
		mock.ExpectQuery("FROM " + table).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"last7", "last30"}).AddRow(0, 0))
	}

	report, err := engine.PlatformUsage(context.Background(), &Window{Start: start, End: end})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 5, report.TotalPosts)
	assert.Equal(t, 100.0, report.Platforms["instagram"].UsagePercentage)
}
