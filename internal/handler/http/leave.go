package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateJalali(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthlyCount(w http.ResponseWriter, r *http.Request)
	MonthlyHourlyReport(w http.ResponseWriter, r *http.Request)
	JalaliMonthlyReport(w http.ResponseWriter, r *http.Request)
	JalaliYearlyReport(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeave(r.Context(), userID, req)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded", result)
}

// CreateJalali implements LeaveHandler.
func (h *leaveHandlerImpl) CreateJalali(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	var req leave.CreateJalaliLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create jalali leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateJalaliLeave(r.Context(), userID, req)
	if err != nil {
		slog.Error("Create jalali leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded", result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	result, err := h.leaveService.ListLeaves(r.Context(), userID)
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	result, err := h.leaveService.GetLeave(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements LeaveHandler.
func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave entry deleted", nil)
}

// MonthlyCount implements LeaveHandler.
func (h *leaveHandlerImpl) MonthlyCount(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.leaveService.MonthlyCount(r.Context(), userID, year, time.Month(month))
	if err != nil {
		slog.Error("Monthly leave count service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyHourlyReport implements LeaveHandler.
func (h *leaveHandlerImpl) MonthlyHourlyReport(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.leaveService.MonthlyHourlyReport(r.Context(), userID, year, time.Month(month))
	if err != nil {
		slog.Error("Monthly hourly leave report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// JalaliMonthlyReport implements LeaveHandler.
func (h *leaveHandlerImpl) JalaliMonthlyReport(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.leaveService.JalaliMonthlyReport(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Jalali monthly leave report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// JalaliYearlyReport implements LeaveHandler.
func (h *leaveHandlerImpl) JalaliYearlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "user_id not found in token")
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		response.BadRequest(w, "year must be numeric", nil)
		return
	}

	result, err := h.leaveService.JalaliYearlyReport(r.Context(), userID, year)
	if err != nil {
		slog.Error("Jalali yearly leave report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
