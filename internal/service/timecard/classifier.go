package timecard

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
)

// classifyDay evaluates completeness first and the leave note second. A note
// only upgrades an incomplete day to JUSTIFIED; it never touches an OK day's
// status, but its observation is still shown.
func classifyDay(p timecard.Punches, note *leave.LeaveNote) (timecard.Status, *string) {
	var observation *string
	if note != nil {
		obs := observationFor(*note)
		observation = &obs
	}

	switch {
	case p.Complete():
		return timecard.StatusOK, observation
	case note != nil:
		return timecard.StatusJustified, observation
	default:
		return timecard.StatusIncomplete, nil
	}
}
