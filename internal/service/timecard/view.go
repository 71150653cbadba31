package timecard

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
)

// NewReportResponse flattens a PeriodReport into the field set renderers
// consume. Punch times are shown in the reference timezone.
func NewReportResponse(cfg timecard.EngineConfig, report timecard.PeriodReport, generatedAt time.Time) timecard.TimecardReportResponse {
	loc := cfg.ReferenceTimeZone
	if loc == nil {
		loc = time.UTC
	}

	days := make([]timecard.DayRecordResponse, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, timecard.DayRecordResponse{
			Date: d.DateKey,
			Punches: timecard.PunchesResponse{
				Entry:      clockLabel(d.Punches.Entry, loc),
				BreakStart: clockLabel(d.Punches.BreakStart, loc),
				BreakEnd:   clockLabel(d.Punches.BreakEnd, loc),
				Exit:       clockLabel(d.Punches.Exit, loc),
			},
			WorkedMinutes: d.WorkedMinutes,
			WorkedLabel:   FormatMinutes(d.WorkedMinutes),
			Status:        d.Status,
			Observation:   d.Observation,
		})
	}

	return timecard.TimecardReportResponse{
		Company: timecard.CompanyHeader{
			Name:  cfg.CompanyName,
			TaxID: cfg.CompanyTaxID,
		},
		User: timecard.UserResponse{
			ID:            report.User.ID,
			Name:          report.User.Name,
			TaxID:         report.User.TaxID,
			JobTitle:      report.User.JobTitle,
			Department:    report.User.Department,
			AdmissionDate: report.User.AdmissionDate,
			SocialID:      report.User.SocialID,
		},
		Range: timecard.RangeResponse{
			Start: report.Range.Start,
			End:   report.Range.End,
		},
		Days: days,
		Totals: timecard.TotalsResponse{
			WorkedMinutes:  report.Totals.WorkedMinutes,
			WorkedLabel:    FormatMinutes(report.Totals.WorkedMinutes),
			IncompleteDays: report.Totals.IncompleteDays,
			JustifiedDays:  report.Totals.JustifiedDays,
		},
		GeneratedAt: generatedAt.In(loc).Format(time.RFC3339),
	}
}

func clockLabel(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(timecard.ClockLayout)
}
