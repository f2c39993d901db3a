package leave

import (
	"strconv"
	"strings"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveDate string  `json:"leave_date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.LeaveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_date",
			Message: "leave_date must be a YYYY-MM-DD date",
		})
	}

	errs = append(errs, validateInterval(r.StartTime, r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Date returns the parsed leave date. Call only after Validate.
func (r *CreateLeaveRequest) Date() time.Time {
	d, _ := validator.IsValidDate(r.LeaveDate)
	return d
}

// Times returns the normalized clock interval, both nil for full-day leave.
// Call only after Validate.
func (r *CreateLeaveRequest) Times() (*time.Time, *time.Time) {
	return parseInterval(r.StartTime, r.EndTime)
}

// CreateJalaliLeaveRequest creates a leave entry addressed by its Jalali
// date; the date is converted to Gregorian before validation and storage.
type CreateJalaliLeaveRequest struct {
	JalaliLeaveDate string  `json:"jalali_leave_date"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Reason          *string `json:"reason,omitempty"`
}

func (r *CreateJalaliLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, _, ok := splitJalaliDate(r.JalaliLeaveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "jalali_leave_date",
			Message: "jalali_leave_date must be a YYYY-MM-DD date",
		})
	}

	errs = append(errs, validateInterval(r.StartTime, r.EndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// JalaliDate returns the year, month and day components. Call only after
// Validate; range checking against the calendar happens at conversion.
func (r *CreateJalaliLeaveRequest) JalaliDate() (int, int, int) {
	year, month, day, _ := splitJalaliDate(r.JalaliLeaveDate)
	return year, month, day
}

// Times returns the normalized clock interval, both nil for full-day leave.
// Call only after Validate.
func (r *CreateJalaliLeaveRequest) Times() (*time.Time, *time.Time) {
	return parseInterval(r.StartTime, r.EndTime)
}

func splitJalaliDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func validateInterval(startTime, endTime *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if (startTime == nil) != (endTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time and end_time must both be set or both be empty",
		})
		return errs
	}
	if startTime == nil {
		return nil
	}

	start, startOK := validator.IsValidClock(*startTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an HH:MM clock time",
		})
	}
	end, endOK := validator.IsValidClock(*endTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an HH:MM clock time",
		})
	}
	if startOK && endOK && !NormalizeClock(start).Before(NormalizeClock(end)) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}
	return errs
}

func parseInterval(startTime, endTime *string) (*time.Time, *time.Time) {
	if startTime == nil || endTime == nil {
		return nil, nil
	}
	start, _ := validator.IsValidClock(*startTime)
	end, _ := validator.IsValidClock(*endTime)
	normStart := NormalizeClock(start)
	normEnd := NormalizeClock(end)
	return &normStart, &normEnd
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	LeaveDate       string  `json:"leave_date"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Reason          *string `json:"reason,omitempty"`
	JalaliDate      string  `json:"jalali_date"`
	JalaliDayOfWeek string  `json:"jalali_day_of_week"`
	JalaliMonth     string  `json:"jalali_month"`
}

func NewLeaveResponse(entry LeaveEntry) LeaveResponse {
	resp := LeaveResponse{
		ID:              entry.ID,
		UserID:          entry.UserID,
		LeaveDate:       entry.LeaveDate.Format("2006-01-02"),
		Reason:          entry.Reason,
		JalaliDate:      entry.JalaliDate,
		JalaliDayOfWeek: entry.JalaliDayOfWeek,
		JalaliMonth:     entry.JalaliMonth,
	}
	if entry.StartTime != nil {
		s := entry.StartTime.Format("15:04")
		resp.StartTime = &s
	}
	if entry.EndTime != nil {
		e := entry.EndTime.Format("15:04")
		resp.EndTime = &e
	}
	return resp
}

func NewLeaveResponses(entries []LeaveEntry) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewLeaveResponse(entry))
	}
	return responses
}

type MonthlyCountResponse struct {
	UserID      string `json:"user_id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	TotalLeaves int64  `json:"total_leaves"`
}

type MonthlyHourlyReportResponse struct {
	TotalHours   int             `json:"total_leave_hours"`
	TotalMinutes int             `json:"total_leave_minutes"`
	Leaves       []LeaveResponse `json:"leaves"`
}

type JalaliMonthlyReportResponse struct {
	LeaveTotal
	JalaliYear  int `json:"jalali_year"`
	JalaliMonth int `json:"jalali_month"`
}

type JalaliYearlyReportResponse struct {
	LeaveTotal
	JalaliYear int `json:"jalali_year"`
}
