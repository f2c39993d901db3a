package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hamkar/worklog-backend-go/internal/domain/worklog"
	"github.com/hamkar/worklog-backend-go/internal/handler/http/response"
	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
)

type WorkLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DayReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	JalaliMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type workLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &workLogHandlerImpl{
		workLogService: workLogService,
	}
}

// userIDFromClaims extracts the authenticated user id set by the verifier.
func userIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}

// Create implements WorkLogHandler.
func (h *workLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	var req worklog.CreateWorkEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create work event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workLogService.CreateEvent(r.Context(), userID, req)
	if err != nil {
		slog.Error("Create work event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work event recorded", result)
}

// List implements WorkLogHandler.
func (h *workLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	result, err := h.workLogService.ListEvents(r.Context(), userID)
	if err != nil {
		slog.Error("List work events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements WorkLogHandler.
func (h *workLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	result, err := h.workLogService.GetEvent(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements WorkLogHandler.
func (h *workLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	if err := h.workLogService.DeleteEvent(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work event deleted", nil)
}

// DayReport implements WorkLogHandler.
func (h *workLogHandlerImpl) DayReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "date must be a YYYY-MM-DD date", nil)
		return
	}

	result, err := h.workLogService.DayReport(r.Context(), userID, date)
	if err != nil {
		slog.Error("Day report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyReport implements WorkLogHandler.
func (h *workLogHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	year, month, ok := yearMonthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numeric, month between 1 and 12", nil)
		return
	}

	result, err := h.workLogService.MonthlyReport(r.Context(), userID, year, time.Month(month))
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// JalaliMonthlyReport implements WorkLogHandler.
func (h *workLogHandlerImpl) JalaliMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	year, month, ok := yearMonthParams(r)
	if !ok {
		response.BadRequest(w, "year and month must be numeric, month between 1 and 12", nil)
		return
	}

	result, err := h.workLogService.JalaliMonthlyReport(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Jalali monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func yearMonthParams(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
