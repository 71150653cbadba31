package timecard

import (
	"context"
	"time"
)

// TimecardService defines the interface for timecard report generation
type TimecardService interface {
	// BuildPeriodReport fetches the user's data for [start, end] and runs the engine
	BuildPeriodReport(ctx context.Context, userID string, start, end time.Time) (PeriodReport, error)

	// GenerateReport validates the request and returns the renderer view
	GenerateReport(ctx context.Context, req TimecardReportRequest) (TimecardReportResponse, error)
}
