package leave

import (
	"fmt"
	"time"
)

// NoteType classifies why an absence is justified.
type NoteType string

const (
	NoteTypeTimeOff  NoteType = "TIME_OFF"
	NoteTypeVacation NoteType = "VACATION"
	NoteTypeRecess   NoteType = "RECESS"
	NoteTypeOther    NoteType = "OTHER"
)

// MaxNoteTextLength is the storage limit for a note's free text.
const MaxNoteTextLength = 500

// ParseNoteType maps a stored value to a NoteType.
func ParseNoteType(s string) (NoteType, error) {
	switch NoteType(s) {
	case NoteTypeTimeOff, NoteTypeVacation, NoteTypeRecess, NoteTypeOther:
		return NoteType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNoteType, s)
}

// LeaveNote justifies absence over an inclusive range of calendar dates.
// StartDate and EndDate carry a calendar date; only their year, month and day
// are meaningful.
type LeaveNote struct {
	ID        string
	UserID    string
	Type      NoteType
	StartDate time.Time
	EndDate   time.Time
	Text      string
	CreatedAt time.Time
}
