package timecard

import (
	"math"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
)

// minutesBetween rounds b-a to whole minutes. Negative spans (clock skew,
// out-of-order punches) clamp to zero.
func minutesBetween(a, b time.Time) int {
	minutes := int(math.Round(b.Sub(a).Seconds() / 60))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// workedMinutes computes time worked on a day. The break is subtracted only
// when both of its ends were punched. Days without ENTRY and EXIT count zero;
// flagging them is the classifier's job.
func workedMinutes(p timecard.Punches) int {
	if !p.Complete() {
		return 0
	}

	if p.BreakStart != nil && p.BreakEnd != nil {
		return minutesBetween(*p.Entry, *p.BreakStart) + minutesBetween(*p.BreakEnd, *p.Exit)
	}

	return minutesBetween(*p.Entry, *p.Exit)
}
