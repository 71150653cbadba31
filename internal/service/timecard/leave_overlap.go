package timecard

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
)

// noteSpan is a leave note with its dates pinned to the reference timezone.
type noteSpan struct {
	note  leave.LeaveNote
	start time.Time // 00:00 of StartDate
	end   time.Time // 00:00 of EndDate
}

// noteIndex holds the report's notes ordered by (StartDate, CreatedAt, ID).
type noteIndex []noteSpan

// calendarDate reinterprets the year, month and day of d in loc. Date columns
// come back from the database as UTC midnight; converting the instant instead
// would move the date back a day for zones west of UTC.
func calendarDate(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func newNoteIndex(notes []leave.LeaveNote, loc *time.Location) noteIndex {
	idx := make(noteIndex, 0, len(notes))
	for _, n := range notes {
		idx = append(idx, noteSpan{
			note:  n,
			start: calendarDate(n.StartDate, loc),
			end:   calendarDate(n.EndDate, loc),
		})
	}

	slices.SortStableFunc(idx, func(a, b noteSpan) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		if c := a.note.CreatedAt.Compare(b.note.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.note.ID, b.note.ID)
	})

	return idx
}

// covering returns the first note overlapping the closed interval
// [dayStart, dayEnd], or nil.
func (idx noteIndex) covering(dayStart, dayEnd time.Time) *leave.LeaveNote {
	for i := range idx {
		span := &idx[i]
		if !span.start.After(dayEnd) && !span.end.Before(dayStart) {
			return &span.note
		}
	}
	return nil
}

// endOfDay is the last representable instant of the day starting at dayStart.
func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// observationFor renders the note summary shown next to a day.
func observationFor(n leave.LeaveNote) string {
	text := strings.TrimSpace(n.Text)

	switch n.Type {
	case leave.NoteTypeTimeOff, leave.NoteTypeVacation, leave.NoteTypeRecess:
		if text == "" {
			return string(n.Type)
		}
		return string(n.Type) + " - " + truncateRunes(text, 40)
	default:
		if text == "" {
			return string(leave.NoteTypeOther)
		}
		return truncateRunes(text, 50)
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
