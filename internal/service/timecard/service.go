package timecard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type TimecardServiceImpl struct {
	cfg          timecard.EngineConfig
	userRepo     user.UserRepository
	punchRepo    attendance.PunchRepository
	noteRepo     leave.LeaveNoteRepository
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewTimecardService(
	cfg timecard.EngineConfig,
	userRepo user.UserRepository,
	punchRepo attendance.PunchRepository,
	noteRepo leave.LeaveNoteRepository,
	fetchTimeout time.Duration,
) timecard.TimecardService {
	return &TimecardServiceImpl{
		cfg:          cfg,
		userRepo:     userRepo,
		punchRepo:    punchRepo,
		noteRepo:     noteRepo,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// BuildPeriodReport fetches user, punches and notes concurrently and runs the
// engine once all three have arrived. Any failed fetch aborts the report.
func (s *TimecardServiceImpl) BuildPeriodReport(ctx context.Context, userID string, start, end time.Time) (timecard.PeriodReport, error) {
	if end.Before(start) {
		return timecard.PeriodReport{}, timecard.ErrInvalidRange
	}

	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	var (
		u      user.User
		events []attendance.PunchEvent
		notes  []leave.LeaveNote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if u, err = s.userRepo.GetByID(gctx, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if events, err = s.punchRepo.ListByUserBetween(gctx, userID, start, end); err != nil {
			return fmt.Errorf("list punch events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if notes, err = s.noteRepo.ListOverlapping(gctx, userID, start, end); err != nil {
			return fmt.Errorf("list leave notes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "Failed to fetch timecard data", "user_id", userID, "error", err)
		return timecard.PeriodReport{}, err
	}

	return BuildReport(s.cfg, u, events, notes, start, end)
}

// GenerateReport generates the timecard report for the requested dates. The
// window covers whole reference-timezone days.
func (s *TimecardServiceImpl) GenerateReport(ctx context.Context, req timecard.TimecardReportRequest) (timecard.TimecardReportResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return timecard.TimecardReportResponse{}, err
	}

	loc := s.cfg.ReferenceTimeZone
	if loc == nil {
		return timecard.TimecardReportResponse{}, timecard.ErrMissingTimeZone
	}

	// Calculate period bounds
	periodStart, err := time.ParseInLocation(timecard.DateLayout, req.StartDate, loc)
	if err != nil {
		return timecard.TimecardReportResponse{}, fmt.Errorf("parse start_date: %w", err)
	}
	lastDay, err := time.ParseInLocation(timecard.DateLayout, req.EndDate, loc)
	if err != nil {
		return timecard.TimecardReportResponse{}, fmt.Errorf("parse end_date: %w", err)
	}
	periodEnd := endOfDay(lastDay)

	report, err := s.BuildPeriodReport(ctx, req.UserID, periodStart, periodEnd)
	if err != nil {
		return timecard.TimecardReportResponse{}, err
	}

	return NewReportResponse(s.cfg, report, s.now()), nil
}
