package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db database.Querier
}

func NewPunchRepository(db database.Querier) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListByUserBetween implements attendance.PunchRepository.
func (r *punchRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.PunchEvent, error) {
	query := `
		SELECT id, user_id, type, punched_at
		FROM punch_events
		WHERE user_id = $1
			AND punched_at >= $2
			AND punched_at <= $3
		ORDER BY punched_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	events := []attendance.PunchEvent{}
	for rows.Next() {
		var ev attendance.PunchEvent
		var punchType string

		if err := rows.Scan(&ev.ID, &ev.UserID, &punchType, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}

		ev.Type, err = attendance.ParsePunchType(punchType)
		if err != nil {
			return nil, fmt.Errorf("punch event %s: %w", ev.ID, err)
		}

		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return events, nil
}
