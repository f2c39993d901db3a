package worklog

import (
	"fmt"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
)

type CreateWorkEventRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment,omitempty"`

	// RecordedTime is optional; empty means "now". It accepts RFC3339 or a
	// naive local timestamp ("2006-01-02T15:04:05" / "2006-01-02 15:04:05").
	RecordedTime string `json:"recorded_time,omitempty"`
}

func (r *CreateWorkEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusStarted) && r.Status != string(StatusEnded) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'started' or 'ended'",
		})
	}

	if !validator.IsEmpty(r.RecordedTime) {
		_, awareOK := validator.IsValidDateTime(r.RecordedTime)
		_, naiveOK := validator.IsValidNaiveDateTime(r.RecordedTime)
		if !awareOK && !naiveOK {
			errs = append(errs, validator.ValidationError{
				Field:   "recorded_time",
				Message: "recorded_time must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResolveRecordedAt returns the proposed timestamp in loc. Naive timestamps
// are interpreted as wall time in loc; an empty value means now. Call only
// after Validate.
func (r *CreateWorkEventRequest) ResolveRecordedAt(loc *time.Location) time.Time {
	if validator.IsEmpty(r.RecordedTime) {
		return time.Now().In(loc)
	}
	if t, ok := validator.IsValidDateTime(r.RecordedTime); ok {
		return t.In(loc)
	}
	t, _ := validator.IsValidNaiveDateTime(r.RecordedTime)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

type WorkEventResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	RecordedTime    string  `json:"recorded_time"`
	Status          string  `json:"status"`
	Comment         *string `json:"comment,omitempty"`
	DayOfWeek       string  `json:"day_of_week"`
	Month           string  `json:"month"`
	JalaliDate      string  `json:"jalali_date"`
	JalaliDayOfWeek string  `json:"jalali_day_of_week"`
	JalaliMonth     string  `json:"jalali_month"`
}

func NewWorkEventResponse(ev WorkEvent) WorkEventResponse {
	return WorkEventResponse{
		ID:              ev.ID,
		UserID:          ev.UserID,
		RecordedTime:    ev.RecordedAt.Format(time.RFC3339),
		Status:          string(ev.Status),
		Comment:         ev.Comment,
		DayOfWeek:       ev.DayOfWeek,
		Month:           ev.Month,
		JalaliDate:      ev.JalaliDate,
		JalaliDayOfWeek: ev.JalaliDayOfWeek,
		JalaliMonth:     ev.JalaliMonth,
	}
}

func NewWorkEventResponses(events []WorkEvent) []WorkEventResponse {
	responses := make([]WorkEventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, NewWorkEventResponse(ev))
	}
	return responses
}

// DayReportResponse reports one day's worked time as display text.
type DayReportResponse struct {
	TotalTime string `json:"total_time"`
}

// FormatDayTotal renders a duration as "H hours, M minutes" with singular
// forms where the figure is 1.
func FormatDayTotal(d time.Duration) string {
	secs := int64(d / time.Second)
	hours := secs / 3600
	minutes := secs % 3600 / 60
	return fmt.Sprintf("%d hour%s, %d minute%s",
		hours, plural(hours), minutes, plural(minutes))
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// MonthlyTotal is the Gregorian month rollup shape, hours without a days
// component.
type MonthlyTotal struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func NewMonthlyTotal(d time.Duration) MonthlyTotal {
	secs := int64(d / time.Second)
	return MonthlyTotal{
		Hours:   int(secs / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}

type MonthlyReportResponse struct {
	TotalWorkTime MonthlyTotal        `json:"total_work_time"`
	WorkLogs      []WorkEventResponse `json:"work_logs"`
}

type JalaliMonthlyReportResponse struct {
	JalaliYear  int                 `json:"jalali_year"`
	JalaliMonth int                 `json:"jalali_month"`
	TotalHours  WorkTotal           `json:"total_hours"`
	WorkLogs    []WorkEventResponse `json:"work_logs"`
}
