package timecard

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// MaxReportRangeDays bounds a single report window.
const MaxReportRangeDays = 366

// ========================================
// TIMECARD REPORT
// ========================================

type TimecardReportRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *TimecardReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}

	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if r.StartDate != "" && r.EndDate != "" {
		startDate, startOK := validator.IsValidDate(r.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}

		endDate, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}

		if startOK && endOK {
			if endDate.Before(startDate) {
				errs = append(errs, validator.ValidationError{
					Field:   "end_date",
					Message: "end_date must not be before start_date",
				})
			} else if endDate.Sub(startDate) >= MaxReportRangeDays*24*time.Hour {
				errs = append(errs, validator.ValidationError{
					Field:   "end_date",
					Message: fmt.Sprintf("report range must not exceed %d days", MaxReportRangeDays),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimecardReportResponse struct {
	Company     CompanyHeader       `json:"company"`
	User        UserResponse        `json:"user"`
	Range       RangeResponse       `json:"range"`
	Days        []DayRecordResponse `json:"days"`
	Totals      TotalsResponse      `json:"totals"`
	GeneratedAt string              `json:"generated_at"`
}

type CompanyHeader struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

type UserResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TaxID         string  `json:"tax_id"`
	JobTitle      *string `json:"job_title"`
	Department    *string `json:"department"`
	AdmissionDate *string `json:"admission_date"`
	SocialID      *string `json:"social_id"`
}

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PunchesResponse carries "HH:mm" times, empty when the punch is missing.
type PunchesResponse struct {
	Entry      string `json:"ENTRY"`
	BreakStart string `json:"BREAK_START"`
	BreakEnd   string `json:"BREAK_END"`
	Exit       string `json:"EXIT"`
}

type DayRecordResponse struct {
	Date          string          `json:"date"`
	Punches       PunchesResponse `json:"punches"`
	WorkedMinutes int             `json:"worked_minutes"`
	WorkedLabel   string          `json:"worked_label"`
	Status        Status          `json:"status"`
	Observation   *string         `json:"observation"`
}

type TotalsResponse struct {
	WorkedMinutes  int    `json:"worked_minutes"`
	WorkedLabel    string `json:"worked_label"`
	IncompleteDays int    `json:"incomplete_days"`
	JustifiedDays  int    `json:"justified_days"`
}
