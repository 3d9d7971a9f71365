package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every query fails. Sections that fold per-platform errors still render;
// sections whose root query fails land in SectionErrors, and neither takes
// the others down.
func TestDashboardSectionIsolation(t *testing.T) {
	engine, mock := newTestEngine(t)

	for i := 0; i < 44; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	}

	userID := int64(5)
	report, err := engine.Dashboard(context.Background(), nil, &userID)
	require.NoError(t, err)

	assert.NotNil(t, report.PlatformUsage)
	assert.Equal(t, 0, report.PlatformUsage.TotalPosts)
	assert.NotNil(t, report.TemporalTrends)
	assert.NotNil(t, report.ContentAnalysis)
	assert.NotNil(t, report.Predictions)

	assert.Nil(t, report.UserEngagement)
	assert.Contains(t, report.SectionErrors, "user_engagement")
	assert.Nil(t, report.UserActivity)
	assert.Contains(t, report.SectionErrors, "user_activity")
}

func TestDashboardOmitsUserSectionWithoutID(t *testing.T) {
	engine, mock := newTestEngine(t)

	for i := 0; i < 37; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	}

	report, err := engine.Dashboard(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Nil(t, report.UserActivity)
	assert.NotContains(t, report.SectionErrors, "user_activity")
}
