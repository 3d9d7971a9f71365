// Package pulseboard defines the wire types of the analytics HTTP API.
package pulseboard

import "pulseboard/pkg/models"

// Response is the envelope wrapping every analytics payload. Error is set
// and Success is false when a top-level report computation fails; partial
// per-platform failures degrade inside Data instead.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps a payload in a success envelope
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Err wraps an error message in a failure envelope
func Err(message string) Response {
	return Response{Success: false, Error: message}
}

// PlatformUsageResponse represents the response from GetPlatformUsage
type PlatformUsageResponse = models.PlatformUsageReport

// UserEngagementResponse represents the response from GetUserEngagement
type UserEngagementResponse = models.UserEngagementReport

// TemporalTrendsResponse represents the response from GetTemporalTrends
type TemporalTrendsResponse = models.TemporalTrendsReport

// UserActivityResponse represents the response from GetUserActivity
type UserActivityResponse = models.UserActivityReport

// ContentAnalysisResponse represents the response from GetContentAnalysis
type ContentAnalysisResponse = models.ContentAnalysisReport

// PredictionsResponse represents the response from GetPredictions
type PredictionsResponse = models.PredictionsReport

// DashboardResponse represents the response from GetDashboard
type DashboardResponse = models.DashboardReport
