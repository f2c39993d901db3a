package leave

import (
	"context"
	"time"
)

// LeaveService defines business logic for leave tracking.
type LeaveService interface {
	// CreateLeave validates a proposed entry against the date's existing
	// entries and persists it on acceptance.
	CreateLeave(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)

	// CreateJalaliLeave is CreateLeave addressed by a Jalali date.
	CreateJalaliLeave(ctx context.Context, userID string, req CreateJalaliLeaveRequest) (LeaveResponse, error)

	ListLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)

	GetLeave(ctx context.Context, userID, id string) (LeaveResponse, error)

	DeleteLeave(ctx context.Context, userID, id string) error

	// MonthlyCount reports the number of entries in a Gregorian month.
	MonthlyCount(ctx context.Context, userID string, year int, month time.Month) (MonthlyCountResponse, error)

	// MonthlyHourlyReport totals hourly entries of a Gregorian month.
	MonthlyHourlyReport(ctx context.Context, userID string, year int, month time.Month) (MonthlyHourlyReportResponse, error)

	// JalaliMonthlyReport totals one Jalali month: full days and hourly time
	// as independent figures.
	JalaliMonthlyReport(ctx context.Context, userID string, jalaliYear, jalaliMonth int) (JalaliMonthlyReportResponse, error)

	// JalaliYearlyReport totals one Jalali year, counting every entry as a
	// leave day.
	JalaliYearlyReport(ctx context.Context, userID string, jalaliYear int) (JalaliYearlyReportResponse, error)
}
