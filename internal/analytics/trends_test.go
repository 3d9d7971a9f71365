package analytics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemporalTrends(t *testing.T) {
	engine, mock := newTestEngine(t)

	mock.ExpectQuery("FROM instagram_posts").
		WillReturnRows(sqlmock.NewRows([]string{"date", "posts", "users"}).
			AddRow("2026-08-01", 5, 3).
			AddRow("2026-08-02", 2, 2))
	mock.ExpectQuery("DOW").
		WillReturnRows(sqlmock.NewRows([]string{"dow", "count"}).
			AddRow(0, 4).AddRow(3, 3))
	mock.ExpectQuery("HOUR").
		WillReturnRows(sqlmock.NewRows([]string{"hour", "count"}).
			AddRow(9, 5).AddRow(18, 2))

	// Second platform's table is absent; the report degrades to empty series
	mock.ExpectQuery("FROM facebook_posts").
		WillReturnError(&pq.Error{Code: "42P01"})

	for _, table := range []string{"x_posts", "reddit_posts", "pinterest_posts", "youtube_posts"} {
		mock.ExpectQuery("FROM " + table).
			WillReturnRows(sqlmock.NewRows([]string{"date", "posts", "users"}))
		mock.ExpectQuery("DOW").
			WillReturnRows(sqlmock.NewRows([]string{"dow", "count"}))
		mock.ExpectQuery("HOUR").
			WillReturnRows(sqlmock.NewRows([]string{"hour", "count"}))
	}

	report, err := engine.TemporalTrends(context.Background(), 30)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 30, report.PeriodDays)
	assert.Len(t, report.DailyTrends, 6)
	assert.Len(t, report.WeeklyPatterns, 6)
	assert.Len(t, report.HourlyPatterns, 6)

	daily := report.DailyTrends["instagram"]
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-08-01", daily[0].Date)
	assert.Equal(t, 5, daily[0].Posts)
	assert.Equal(t, 3, daily[0].Users)

	assert.Equal(t, 4, report.WeeklyPatterns["instagram"][0])
	assert.Equal(t, 3, report.WeeklyPatterns["instagram"][3])
	assert.Equal(t, 5, report.HourlyPatterns["instagram"][9])

	assert.Empty(t, report.DailyTrends["facebook"])
	assert.Empty(t, report.WeeklyPatterns["facebook"])
	assert.Empty(t, report.HourlyPatterns["facebook"])
}
