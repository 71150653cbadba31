package timecard

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_FullDay(t *testing.T) {
	start, end := march()

	report, err := BuildReport(testConfig(), testUser(), fullDay("2024-03-01"), nil, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, "2024-03-01", day.DateKey)
	assert.Equal(t, 480, day.WorkedMinutes)
	assert.Equal(t, timecard.StatusOK, day.Status)
	assert.Nil(t, day.Observation)
	assert.Equal(t, 480, report.Totals.WorkedMinutes)
}

func TestBuildReport_EntryOnlyIsIncomplete(t *testing.T) {
	start, end := march()
	events := []attendance.PunchEvent{punch(attendance.PunchEntry, at("2024-03-02", "08:00"))}

	report, err := BuildReport(testConfig(), testUser(), events, nil, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, timecard.StatusIncomplete, report.Days[0].Status)
	assert.Equal(t, 0, report.Days[0].WorkedMinutes)
	assert.Nil(t, report.Days[0].Observation)
	assert.Equal(t, timecard.Totals{IncompleteDays: 1}, report.Totals)
}

func TestBuildReport_CoveredIncompleteDayIsJustified(t *testing.T) {
	start, end := march()
	events := []attendance.PunchEvent{punch(attendance.PunchEntry, at("2024-03-02", "08:00"))}
	notes := []leave.LeaveNote{note("n1", leave.NoteTypeTimeOff, "2024-03-02", "2024-03-02", "médico")}

	report, err := BuildReport(testConfig(), testUser(), events, notes, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, timecard.StatusJustified, day.Status)
	require.NotNil(t, day.Observation)
	assert.Equal(t, "TIME_OFF - médico", *day.Observation)
	assert.Equal(t, timecard.Totals{JustifiedDays: 1}, report.Totals)
}

func TestBuildReport_DuplicateEntryFirstWins(t *testing.T) {
	start, end := march()
	events := []attendance.PunchEvent{
		punch(attendance.PunchEntry, at("2024-03-04", "08:00")),
		punch(attendance.PunchEntry, at("2024-03-04", "08:05")),
		punch(attendance.PunchExit, at("2024-03-04", "12:00")),
	}

	report, err := BuildReport(testConfig(), testUser(), events, nil, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.True(t, report.Days[0].Punches.Entry.Equal(at("2024-03-04", "08:00")))
	assert.Equal(t, 240, report.Days[0].WorkedMinutes)
}

func TestBuildReport_ClockSkewClampsButStaysOK(t *testing.T) {
	start, end := march()
	events := []attendance.PunchEvent{
		punch(attendance.PunchExit, at("2024-03-05", "07:50")),
		punch(attendance.PunchEntry, at("2024-03-05", "08:00")),
	}

	report, err := BuildReport(testConfig(), testUser(), events, nil, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, 0, report.Days[0].WorkedMinutes)
	assert.Equal(t, timecard.StatusOK, report.Days[0].Status)
}

func TestBuildReport_EmptyWindow(t *testing.T) {
	start, end := march()

	report, err := BuildReport(testConfig(), testUser(), nil, nil, start, end)

	require.NoError(t, err)
	assert.NotNil(t, report.Days)
	assert.Empty(t, report.Days)
	assert.Equal(t, timecard.Totals{}, report.Totals)
	assert.Equal(t, timecard.DateRange{Start: "2024-03-01", End: "2024-03-31"}, report.Range)
}

func TestBuildReport_LeaveWithoutPunchesProducesNoDay(t *testing.T) {
	start, end := march()
	notes := []leave.LeaveNote{note("n1", leave.NoteTypeVacation, "2024-03-10", "2024-03-20", "")}

	report, err := BuildReport(testConfig(), testUser(), fullDay("2024-03-01"), notes, start, end)

	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, "2024-03-01", report.Days[0].DateKey)
	assert.Equal(t, 0, report.Totals.JustifiedDays)
}

func TestBuildReport_InvalidRange(t *testing.T) {
	start, end := march()

	_, err := BuildReport(testConfig(), testUser(), fullDay("2024-03-01"), nil, end, start)

	assert.ErrorIs(t, err, timecard.ErrInvalidRange)
}

func TestBuildReport_MissingTimeZone(t *testing.T) {
	start, end := march()
	cfg := testConfig()
	cfg.ReferenceTimeZone = nil

	_, err := BuildReport(cfg, testUser(), nil, nil, start, end)

	assert.ErrorIs(t, err, timecard.ErrMissingTimeZone)
}

func TestBuildReport_UserSnapshot(t *testing.T) {
	start, end := march()

	report, err := BuildReport(testConfig(), testUser(), nil, nil, start, end)

	require.NoError(t, err)
	assert.Equal(t, testUserID, report.User.ID)
	assert.Equal(t, "Maria Souza", report.User.Name)
	assert.Equal(t, "123.456.789-00", report.User.TaxID)
	require.NotNil(t, report.User.AdmissionDate)
	assert.Equal(t, "2021-02-01", *report.User.AdmissionDate)
	assert.Nil(t, report.User.Department)
	assert.Nil(t, report.User.SocialID)
}

func TestBuildReport_RangeRenderedInReferenceTimezone(t *testing.T) {
	// 01:00Z on 03-01 is still 02-29 in Bahia
	start := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)

	report, err := BuildReport(testConfig(), testUser(), nil, nil, start, end)

	require.NoError(t, err)
	assert.Equal(t, timecard.DateRange{Start: "2024-02-29", End: "2024-03-09"}, report.Range)
}

// randomMonth builds a noisy but deterministic month of punches and notes.
func randomMonth(seed uint64) ([]attendance.PunchEvent, []leave.LeaveNote) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var events []attendance.PunchEvent
	var notes []leave.LeaveNote

	for d := 1; d <= 31; d++ {
		day := time.Date(2024, 3, d, 0, 0, 0, 0, bahia)
		key := day.Format(timecard.DateLayout)
		for _, pt := range attendance.PunchTypes {
			if r.IntN(4) == 0 {
				continue
			}
			offset := time.Duration(6*60+r.IntN(16*60)) * time.Minute
			events = append(events, punch(pt, day.Add(offset)))
		}
		if r.IntN(6) == 0 {
			types := []leave.NoteType{leave.NoteTypeTimeOff, leave.NoteTypeVacation, leave.NoteTypeRecess, leave.NoteTypeOther}
			notes = append(notes, note(key, types[r.IntN(len(types))], key, key, "atestado"))
		}
	}

	slices.SortStableFunc(events, func(a, b attendance.PunchEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return events, notes
}

func TestBuildReport_Properties(t *testing.T) {
	start, end := march()

	for seed := uint64(1); seed <= 25; seed++ {
		events, notes := randomMonth(seed)
		idx := newNoteIndex(notes, bahia)

		report, err := BuildReport(testConfig(), testUser(), events, notes, start, end)
		require.NoError(t, err)

		sum := 0
		for i, d := range report.Days {
			if i > 0 {
				prev := report.Days[i-1].DateKey
				assert.Less(t, prev, d.DateKey, "days must be strictly ascending")
				prevDay, _ := time.ParseInLocation(timecard.DateLayout, prev, bahia)
				curDay, _ := time.ParseInLocation(timecard.DateLayout, d.DateKey, bahia)
				assert.True(t, prevDay.Before(curDay))
			}

			assert.Equal(t, d.Status == timecard.StatusOK, d.Punches.Entry != nil && d.Punches.Exit != nil)

			if d.Status == timecard.StatusJustified {
				assert.NotNil(t, coveringOn(idx, d.DateKey), "justified day %s needs a covering note", d.DateKey)
			}
			if d.Status == timecard.StatusOK {
				sum += d.WorkedMinutes
			} else {
				assert.Zero(t, d.WorkedMinutes)
			}
		}
		assert.Equal(t, sum, report.Totals.WorkedMinutes)

		again, err := BuildReport(testConfig(), testUser(), events, notes, start, end)
		require.NoError(t, err)
		assert.Equal(t, report, again)
	}
}

func TestBuildReport_ConcurrentCallsAgree(t *testing.T) {
	start, end := march()
	events, notes := randomMonth(42)
	want, err := BuildReport(testConfig(), testUser(), events, notes, start, end)
	require.NoError(t, err)

	results := make(chan timecard.PeriodReport, 8)
	for range 8 {
		go func() {
			got, _ := BuildReport(testConfig(), testUser(), events, notes, start, end)
			results <- got
		}()
	}
	for range 8 {
		assert.Equal(t, want, <-results)
	}
}
