package response

import (
	"errors"
	"net/http"

	"github.com/hamkar/worklog-backend-go/internal/domain/auth"
	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/hamkar/worklog-backend-go/internal/domain/worklog"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jalali"
	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrTelegramIDExists):
		Conflict(w, "Telegram ID already registered")

	// Worklog domain errors
	case errors.Is(err, worklog.ErrSequenceViolation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrFirstEventMustStart):
		BadRequest(w, "First event of the day must be 'started'", nil)
	case errors.Is(err, worklog.ErrInvalidStatus):
		BadRequest(w, "Status must be 'started' or 'ended'", nil)
	case errors.Is(err, worklog.ErrWorkEventNotFound):
		NotFound(w, "Work event not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave entry not found")
	case errors.Is(err, leave.ErrFullDayConflictsWithExisting):
		Conflict(w, "A full-day leave conflicts with existing entries on this date")
	case errors.Is(err, leave.ErrHourlyConflictsWithFullDay):
		Conflict(w, "An hourly leave conflicts with a full-day leave on this date")
	case errors.Is(err, leave.ErrIntervalOverlap):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrDuplicateLeave):
		Conflict(w, "An identical leave entry already exists")
	case errors.Is(err, leave.ErrInvalidInterval):
		BadRequest(w, "start_time and end_time must both be set or both be empty", nil)

	// Calendar errors
	case errors.Is(err, jalali.ErrInvalidDate):
		BadRequest(w, "Invalid Jalali date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
