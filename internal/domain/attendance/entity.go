package attendance

import (
	"fmt"
	"time"
)

// PunchType is the canonical kind of a clock action.
type PunchType string

const (
	PunchEntry      PunchType = "ENTRY"
	PunchBreakStart PunchType = "BREAK_START"
	PunchBreakEnd   PunchType = "BREAK_END"
	PunchExit       PunchType = "EXIT"
)

// PunchTypes lists every punch type in the order a regular working day records them.
var PunchTypes = []PunchType{PunchEntry, PunchBreakStart, PunchBreakEnd, PunchExit}

// Valid reports whether t is one of the four canonical punch types.
func (t PunchType) Valid() bool {
	switch t {
	case PunchEntry, PunchBreakStart, PunchBreakEnd, PunchExit:
		return true
	}
	return false
}

// ParsePunchType maps a stored value to a PunchType.
func ParsePunchType(s string) (PunchType, error) {
	if t := PunchType(s); t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPunchType, s)
}

// PunchEvent is a single recorded clock action. Events are immutable once stored.
type PunchEvent struct {
	ID        string
	UserID    string
	Type      PunchType
	Timestamp time.Time
}
