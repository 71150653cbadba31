package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type leaveNoteRepositoryImpl struct {
	db database.Querier
}

func NewLeaveNoteRepository(db database.Querier) leave.LeaveNoteRepository {
	return &leaveNoteRepositoryImpl{db: db}
}

// ListOverlapping implements leave.LeaveNoteRepository. The window bounds are
// compared as calendar dates in the location they carry.
func (r *leaveNoteRepositoryImpl) ListOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveNote, error) {
	query := `
		SELECT id, user_id, type, start_date, end_date, note, created_at
		FROM leave_notes
		WHERE user_id = $1
			AND start_date <= $3::date
			AND end_date >= $2::date
		ORDER BY start_date ASC, created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to query leave notes: %w", err)
	}
	defer rows.Close()

	notes := []leave.LeaveNote{}
	for rows.Next() {
		var n leave.LeaveNote
		var noteType string

		err := rows.Scan(&n.ID, &n.UserID, &noteType, &n.StartDate, &n.EndDate, &n.Text, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave note: %w", err)
		}

		n.Type, err = leave.ParseNoteType(noteType)
		if err != nil {
			return nil, fmt.Errorf("leave note %s: %w", n.ID, err)
		}

		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return notes, nil
}
