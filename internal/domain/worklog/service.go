package worklog

import (
	"context"
	"time"
)

// WorkLogService defines business logic for work session tracking.
type WorkLogService interface {
	// CreateEvent validates a proposed event against the user's history and
	// persists it on acceptance.
	CreateEvent(ctx context.Context, userID string, req CreateWorkEventRequest) (WorkEventResponse, error)

	ListEvents(ctx context.Context, userID string) ([]WorkEventResponse, error)

	GetEvent(ctx context.Context, userID, id string) (WorkEventResponse, error)

	DeleteEvent(ctx context.Context, userID, id string) error

	// DayReport totals one local calendar day.
	DayReport(ctx context.Context, userID string, date time.Time) (DayReportResponse, error)

	// MonthlyReport totals a Gregorian month.
	MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (MonthlyReportResponse, error)

	// JalaliMonthlyReport totals a Jalali month, independent of Gregorian
	// month boundaries.
	JalaliMonthlyReport(ctx context.Context, userID string, jalaliYear, jalaliMonth int) (JalaliMonthlyReportResponse, error)
}
