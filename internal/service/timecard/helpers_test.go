package timecard

import (
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
)

const testUserID = "0190a5c2-3b7e-7c1d-9f2a-1b2c3d4e5f60"

var bahia = mustLoadLocation("America/Bahia")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func testConfig() timecard.EngineConfig {
	return timecard.EngineConfig{
		ReferenceTimeZone: bahia,
		CompanyName:       "FAZAG",
		CompanyTaxID:      "00.000.000/0001-00",
	}
}

// at returns day+clock ("2006-01-02", "15:04:05" or "15:04") in the reference timezone.
func at(day, clock string) time.Time {
	layout := "2006-01-02 15:04"
	if len(clock) == len("15:04:05") {
		layout = "2006-01-02 15:04:05"
	}
	t, err := time.ParseInLocation(layout, day+" "+clock, bahia)
	if err != nil {
		panic(err)
	}
	return t
}

// calendar mimics a DATE column scanned by pgx: midnight UTC.
func calendar(day string) time.Time {
	t, err := time.Parse(timecard.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return t
}

func punch(pt attendance.PunchType, ts time.Time) attendance.PunchEvent {
	return attendance.PunchEvent{
		ID:        ts.Format(time.RFC3339Nano) + string(pt),
		UserID:    testUserID,
		Type:      pt,
		Timestamp: ts,
	}
}

func note(id string, nt leave.NoteType, start, end, text string) leave.LeaveNote {
	return leave.LeaveNote{
		ID:        id,
		UserID:    testUserID,
		Type:      nt,
		StartDate: calendar(start),
		EndDate:   calendar(end),
		Text:      text,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testUser() user.User {
	jobTitle := "Auxiliar Administrativo"
	admission := calendar("2021-02-01")
	return user.User{
		ID:            testUserID,
		Name:          "Maria Souza",
		TaxID:         "123.456.789-00",
		JobTitle:      &jobTitle,
		AdmissionDate: &admission,
		Role:          user.RoleEmployee,
	}
}

func fullDay(day string) []attendance.PunchEvent {
	return []attendance.PunchEvent{
		punch(attendance.PunchEntry, at(day, "08:00")),
		punch(attendance.PunchBreakStart, at(day, "12:00")),
		punch(attendance.PunchBreakEnd, at(day, "13:00")),
		punch(attendance.PunchExit, at(day, "17:00")),
	}
}

func march() (time.Time, time.Time) {
	return at("2024-03-01", "00:00"), endOfDay(at("2024-03-31", "00:00"))
}
