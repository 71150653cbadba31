package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timecard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserIDRequired):
		BadRequest(w, "User ID is required", nil)
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Timecard domain errors
	case errors.Is(err, timecard.ErrInvalidRange):
		BadRequest(w, "End date must not precede start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
