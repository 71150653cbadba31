package timecard

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
)

// DateLayout is the day key format. Fixed width keeps lexicographic order
// equal to chronological order.
const DateLayout = "2006-01-02"

// ClockLayout formats punch times and worked-time labels.
const ClockLayout = "15:04"

// EngineConfig is injected at construction; nothing in the engine reads the
// environment.
type EngineConfig struct {
	ReferenceTimeZone *time.Location
	CompanyName       string
	CompanyTaxID      string
}

type Status string

const (
	StatusOK         Status = "OK"
	StatusIncomplete Status = "INCOMPLETE"
	StatusJustified  Status = "JUSTIFIED"
)

// Punches holds the first punch of each type recorded on a day.
type Punches struct {
	Entry      *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	Exit       *time.Time
}

// Get returns the slot for t, nil when unset.
func (p *Punches) Get(t attendance.PunchType) *time.Time {
	switch t {
	case attendance.PunchEntry:
		return p.Entry
	case attendance.PunchBreakStart:
		return p.BreakStart
	case attendance.PunchBreakEnd:
		return p.BreakEnd
	case attendance.PunchExit:
		return p.Exit
	}
	return nil
}

// Set stores ts in the slot for t. Unknown types are ignored.
func (p *Punches) Set(t attendance.PunchType, ts time.Time) {
	switch t {
	case attendance.PunchEntry:
		p.Entry = &ts
	case attendance.PunchBreakStart:
		p.BreakStart = &ts
	case attendance.PunchBreakEnd:
		p.BreakEnd = &ts
	case attendance.PunchExit:
		p.Exit = &ts
	}
}

// Complete reports whether both ENTRY and EXIT were punched.
func (p *Punches) Complete() bool {
	return p.Entry != nil && p.Exit != nil
}

type DayRecord struct {
	DateKey       string
	Punches       Punches
	WorkedMinutes int
	Status        Status
	Observation   *string
}

type Totals struct {
	WorkedMinutes  int
	IncompleteDays int
	JustifiedDays  int
}

// UserSnapshot is the user as seen at report time.
type UserSnapshot struct {
	ID            string
	Name          string
	TaxID         string
	JobTitle      *string
	Department    *string
	AdmissionDate *string // YYYY-MM-DD
	SocialID      *string
}

// DateRange is a report window rendered as reference-timezone dates.
type DateRange struct {
	Start string
	End   string
}

// PeriodReport is built fresh per call and never mutated afterwards.
type PeriodReport struct {
	User   UserSnapshot
	Range  DateRange
	Days   []DayRecord
	Totals Totals
}
