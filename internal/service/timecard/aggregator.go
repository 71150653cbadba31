package timecard

import (
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
)

// aggregate rolls day records into period totals. Only OK days contribute
// worked minutes.
func aggregate(days []timecard.DayRecord) timecard.Totals {
	var totals timecard.Totals

	for _, d := range days {
		switch d.Status {
		case timecard.StatusOK:
			totals.WorkedMinutes += d.WorkedMinutes
		case timecard.StatusIncomplete:
			totals.IncompleteDays++
		case timecard.StatusJustified:
			totals.JustifiedDays++
		}
	}

	return totals
}

// FormatMinutes renders minutes as HH:mm. Hours are not wrapped at 24.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
