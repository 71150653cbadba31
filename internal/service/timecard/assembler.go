package timecard

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
)

// BuildReport turns one user's punches and leave notes over [start, end] into
// a PeriodReport. It is pure and safe for concurrent use; events are expected
// ascending by timestamp and notes to overlap the window.
//
// Days with no punches produce no record, even when a leave note covers them.
func BuildReport(
	cfg timecard.EngineConfig,
	u user.User,
	events []attendance.PunchEvent,
	notes []leave.LeaveNote,
	start, end time.Time,
) (timecard.PeriodReport, error) {
	if cfg.ReferenceTimeZone == nil {
		return timecard.PeriodReport{}, timecard.ErrMissingTimeZone
	}
	if end.Before(start) {
		return timecard.PeriodReport{}, timecard.ErrInvalidRange
	}
	loc := cfg.ReferenceTimeZone

	buckets := bucketByDay(events, loc, start, end)
	idx := newNoteIndex(notes, loc)

	keys := buckets.sortedKeys()
	days := make([]timecard.DayRecord, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		note := idx.covering(b.start, endOfDay(b.start))
		status, observation := classifyDay(b.punches, note)

		worked := 0
		if status == timecard.StatusOK {
			worked = workedMinutes(b.punches)
		}

		days = append(days, timecard.DayRecord{
			DateKey:       key,
			Punches:       b.punches,
			WorkedMinutes: worked,
			Status:        status,
			Observation:   observation,
		})
	}

	return timecard.PeriodReport{
		User: snapshotUser(u),
		Range: timecard.DateRange{
			Start: dayKey(start, loc),
			End:   dayKey(end, loc),
		},
		Days:   days,
		Totals: aggregate(days),
	}, nil
}

func snapshotUser(u user.User) timecard.UserSnapshot {
	snap := timecard.UserSnapshot{
		ID:         u.ID,
		Name:       u.Name,
		TaxID:      u.TaxID,
		JobTitle:   u.JobTitle,
		Department: u.Department,
		SocialID:   u.SocialID,
	}
	if u.AdmissionDate != nil {
		// calendar date, see calendarDate
		admission := u.AdmissionDate.Format(timecard.DateLayout)
		snap.AdmissionDate = &admission
	}
	return snap
}
