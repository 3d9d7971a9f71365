package models

import "time"

// PlatformUsageStats holds per-platform usage statistics for one reporting
// window. Trailing 7/30-day counts are always relative to wall clock,
// independent of the requested window.
type PlatformUsageStats struct {
	Platform        string     `json:"platform"`
	TotalPosts      int        `json:"total_posts"`
	UniqueUsers     int        `json:"unique_users"`
	SuccessRate     float64    `json:"success_rate"`
	PostsLast7Days  int        `json:"posts_last_7_days"`
	PostsLast30Days int        `json:"posts_last_30_days"`
	FirstPostDate   *time.Time `json:"first_post_date"`
	LastPostDate    *time.Time `json:"last_post_date"`
	ActivityScore   float64    `json:"activity_score"`
	UsagePercentage float64    `json:"usage_percentage"`
}

// PlatformRanking is one entry of the platforms-by-volume ranking
type PlatformRanking struct {
	Platform   string `json:"platform"`
	TotalPosts int    `json:"total_posts"`
}

// PlatformUsageReport aggregates usage statistics across all platforms
type PlatformUsageReport struct {
	Platforms        map[string]PlatformUsageStats `json:"platforms"`
	PlatformRankings []PlatformRanking             `json:"platform_rankings"`
	MostUsedPlatform string                        `json:"most_used_platform,omitempty"`
	TotalPosts       int                           `json:"total_posts"`
	GeneratedAt      time.Time                     `json:"generated_at"`
}

// EngagementLevels partitions registered users by posting volume.
// high + medium + low + inactive always equals total_registered_users.
type EngagementLevels struct {
	HighEngagement   int `json:"high_engagement"`
	MediumEngagement int `json:"medium_engagement"`
	LowEngagement    int `json:"low_engagement"`
	Inactive         int `json:"inactive"`
}

// TopUser is one entry of the most-active-users list
type TopUser struct {
	UserID        int64 `json:"user_id"`
	TotalPosts    int   `json:"total_posts"`
	PlatformsUsed int   `json:"platforms_used"`
}

// UserEngagementReport holds cross-platform user engagement metrics
type UserEngagementReport struct {
	TotalRegisteredUsers  int              `json:"total_registered_users"`
	ActiveUsers           int              `json:"active_users"`
	ActivationRate        float64          `json:"activation_rate"`
	EngagementLevels      EngagementLevels `json:"engagement_levels"`
	MultiPlatformUsers    int              `json:"multi_platform_users"`
	MultiPlatformRate     float64          `json:"multi_platform_rate"`
	AvgPostsPerActiveUser float64          `json:"avg_posts_per_active_user"`
	TopUsers              []TopUser        `json:"top_users"`
	GeneratedAt           time.Time        `json:"generated_at"`
}

// DailyTrend is one calendar day's posting volume for a platform
type DailyTrend struct {
	Date  string `json:"date"`
	Posts int    `json:"posts"`
	Users int    `json:"users"`
}

// TemporalTrendsReport holds daily, weekly and hourly posting histograms
// per platform. Weekly patterns are keyed 0=Sunday..6=Saturday following
// EXTRACT(DOW); hourly patterns are keyed 0-23 in the database timezone.
type TemporalTrendsReport struct {
	PeriodDays     int                       `json:"period_days"`
	DailyTrends    map[string][]DailyTrend   `json:"daily_trends"`
	WeeklyPatterns map[string]map[int]int    `json:"weekly_patterns"`
	HourlyPatterns map[string]map[int]int    `json:"hourly_patterns"`
	GeneratedAt    time.Time                 `json:"generated_at"`
}

// ActivityPost is one post in a per-user activity history, annotated with
// the platform's extra display columns
type ActivityPost struct {
	ID           int64             `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Content      string            `json:"content,omitempty"`
	Extras       map[string]string `json:"extras,omitempty"`
}

// PlatformActivity holds one platform's slice of a user's history. Both
// TotalPosts and SuccessRate are computed over the capped (50 most recent)
// list, not lifetime totals.
type PlatformActivity struct {
	TotalPosts  int            `json:"total_posts"`
	SuccessRate float64        `json:"success_rate"`
	Posts       []ActivityPost `json:"posts"`
}

// UserStatistics summarizes a user's activity across platforms
type UserStatistics struct {
	TotalPosts          int        `json:"total_posts"`
	PlatformsUsed       int        `json:"platforms_used"`
	AvgSuccessRate      float64    `json:"avg_success_rate"`
	MostActivePlatform  string     `json:"most_active_platform,omitempty"`
	RegistrationDate    *time.Time `json:"registration_date"`
	UserEngagementLevel string     `json:"user_engagement_level"`
}

// UserActivityReport holds one user's recent activity across all platforms
type UserActivityReport struct {
	UserID         int64                       `json:"user_id"`
	Platforms      map[string]PlatformActivity `json:"platforms"`
	UserStatistics UserStatistics              `json:"user_statistics"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}

// ContentStats holds character-length statistics over non-empty content
type ContentStats struct {
	AvgLength             float64 `json:"avg_length"`
	MinLength             int     `json:"min_length"`
	MaxLength             int     `json:"max_length"`
	TotalPostsWithContent int     `json:"total_posts_with_content"`
}

// ContentAnalysisReport holds content-length statistics per platform.
// Platforms without a content column are omitted.
type ContentAnalysisReport struct {
	Platforms   map[string]ContentStats `json:"platforms"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// PlatformScore is one entry of the best-platforms prediction
type PlatformScore struct {
	Platform      string  `json:"platform"`
	Score         float64 `json:"score"`
	ActivityScore float64 `json:"activity_score"`
	SuccessRate   float64 `json:"success_rate"`
}

// PostingHour is one entry of the best-posting-hours prediction
type PostingHour struct {
	Hour  int `json:"hour"`
	Posts int `json:"posts"`
}

// ContentTopic is one entry of the top-content-topics prediction
type ContentTopic struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// PredictionsReport holds the heuristic posting recommendations. The topic
// list comes from naive token counting over a bounded sample, not a topic
// model; treat it as approximate.
type PredictionsReport struct {
	BestPlatforms    []PlatformScore `json:"best_platforms"`
	BestPostingHours []PostingHour   `json:"best_posting_hours"`
	TopContentTopics []ContentTopic  `json:"top_content_topics"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// DashboardReport combines every report into one payload. Sections are
// computed independently; a section that fails is left nil and its error
// recorded in SectionErrors so the others still render.
type DashboardReport struct {
	PlatformUsage   *PlatformUsageReport   `json:"platform_usage,omitempty"`
	UserEngagement  *UserEngagementReport  `json:"user_engagement,omitempty"`
	TemporalTrends  *TemporalTrendsReport  `json:"temporal_trends,omitempty"`
	ContentAnalysis *ContentAnalysisReport `json:"content_analysis,omitempty"`
	Predictions     *PredictionsReport     `json:"predictions,omitempty"`
	UserActivity    *UserActivityReport    `json:"user_activity,omitempty"`
	SectionErrors   map[string]string      `json:"section_errors,omitempty"`
	GeneratedAt     time.Time              `json:"generated_at"`
}
