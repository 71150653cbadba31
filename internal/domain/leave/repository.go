package leave

import (
	"context"
	"time"
)

// LeaveNoteRepository - interface for leave_notes table
type LeaveNoteRepository interface {
	// ListOverlapping returns the user's notes whose [start_date, end_date]
	// intersects the calendar dates of [start, end], ordered by
	// (start_date, created_at, id).
	ListOverlapping(ctx context.Context, userID string, start, end time.Time) ([]LeaveNote, error)
}
