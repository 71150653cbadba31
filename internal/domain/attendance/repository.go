package attendance

import (
	"context"
	"time"
)

// PunchRepository defines read access to recorded punch events.
type PunchRepository interface {
	// ListByUserBetween returns the user's punches with start <= timestamp <= end,
	// ordered ascending by timestamp.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]PunchEvent, error)
}
