package http

import (
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimecardHandler interface {
	// GetMine returns the caller's own timecard
	GetMine(w http.ResponseWriter, r *http.Request)

	// GetByUserID returns the timecard of the user named in the path
	GetByUserID(w http.ResponseWriter, r *http.Request)
}

type timecardHandlerImpl struct {
	timecardService timecard.TimecardService
}

func NewTimecardHandler(timecardService timecard.TimecardService) TimecardHandler {
	return &timecardHandlerImpl{
		timecardService: timecardService,
	}
}

// GetMine handles GET /timecards/me?start_date=&end_date=
func (h *timecardHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	h.respond(w, r, userID)
}

// GetByUserID handles GET /timecards/{userID}?start_date=&end_date=
func (h *timecardHandlerImpl) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.HandleError(w, user.ErrUserIDRequired)
		return
	}

	h.respond(w, r, userID)
}

func (h *timecardHandlerImpl) respond(w http.ResponseWriter, r *http.Request, userID string) {
	req := timecard.TimecardReportRequest{
		UserID:    userID,
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.timecardService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
