package leave

import (
	"context"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jalali"
	"github.com/hamkar/worklog-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository
	location *time.Location
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository, userRepository user.UserRepository, location *time.Location) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		location:        location,
	}
}

// CreateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startTime, endTime := req.Times()
	return l.createEntry(ctx, userID, req.Date(), startTime, endTime, req.Reason)
}

// CreateJalaliLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateJalaliLeave(ctx context.Context, userID string, req leave.CreateJalaliLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	year, month, day := req.JalaliDate()
	date, err := jalali.Date(year, month, day, l.location)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startTime, endTime := req.Times()
	return l.createEntry(ctx, userID, date, startTime, endTime, req.Reason)
}

// createEntry runs the shared conflict check and insert. The whole sequence
// holds a per-user advisory lock so concurrent submissions for the same date
// serialize and the loser sees the winner's entry.
func (l *LeaveServiceImpl) createEntry(ctx context.Context, userID string, date time.Time, startTime, endTime *time.Time, reason *string) (leave.LeaveResponse, error) {
	if _, err := l.UserRepository.GetByID(ctx, userID); err != nil {
		return leave.LeaveResponse{}, err
	}

	var created leave.LeaveEntry
	err := postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := l.LeaveRepository.LockUser(txCtx, userID); err != nil {
			return err
		}

		existing, err := l.LeaveRepository.ListByUserDate(txCtx, userID, date)
		if err != nil {
			return err
		}

		if err := leave.ValidateNewLeave(existing, startTime, endTime); err != nil {
			return err
		}

		parts := jalali.PartsOf(date)
		created, err = l.LeaveRepository.Create(txCtx, leave.LeaveEntry{
			UserID:          userID,
			LeaveDate:       date,
			StartTime:       startTime,
			EndTime:         endTime,
			Reason:          reason,
			JalaliDate:      parts.Date,
			JalaliDayOfWeek: parts.DayOfWeek,
			JalaliMonth:     parts.Month,
		})
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(created), nil
}

// ListLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	entries, err := l.LeaveRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveResponses(entries), nil
}

// GetLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeave(ctx context.Context, userID, id string) (leave.LeaveResponse, error) {
	entry, err := l.LeaveRepository.GetByID(ctx, id, userID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(entry), nil
}

// DeleteLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeave(ctx context.Context, userID, id string) error {
	return l.LeaveRepository.Delete(ctx, id, userID)
}

// MonthlyCount implements leave.LeaveService.
func (l *LeaveServiceImpl) MonthlyCount(ctx context.Context, userID string, year int, month time.Month) (leave.MonthlyCountResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, l.location)
	to := from.AddDate(0, 1, 0)

	count, err := l.LeaveRepository.CountByUserRange(ctx, userID, from, to)
	if err != nil {
		return leave.MonthlyCountResponse{}, err
	}

	return leave.MonthlyCountResponse{
		UserID:      userID,
		Year:        year,
		Month:       int(month),
		TotalLeaves: count,
	}, nil
}

// MonthlyHourlyReport implements leave.LeaveService.
func (l *LeaveServiceImpl) MonthlyHourlyReport(ctx context.Context, userID string, year int, month time.Month) (leave.MonthlyHourlyReportResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, l.location)
	to := from.AddDate(0, 1, 0)

	entries, err := l.LeaveRepository.ListHourlyByUserRange(ctx, userID, from, to)
	if err != nil {
		return leave.MonthlyHourlyReportResponse{}, err
	}

	secs := int64(leave.HourlySum(entries) / time.Second)
	return leave.MonthlyHourlyReportResponse{
		TotalHours:   int(secs / 3600),
		TotalMinutes: int(secs % 3600 / 60),
		Leaves:       leave.NewLeaveResponses(entries),
	}, nil
}

// JalaliMonthlyReport implements leave.LeaveService.
func (l *LeaveServiceImpl) JalaliMonthlyReport(ctx context.Context, userID string, jalaliYear, jalaliMonth int) (leave.JalaliMonthlyReportResponse, error) {
	from, to, err := jalali.MonthRange(jalaliYear, jalaliMonth, l.location)
	if err != nil {
		return leave.JalaliMonthlyReportResponse{}, err
	}

	entries, err := l.LeaveRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return leave.JalaliMonthlyReportResponse{}, err
	}

	return leave.JalaliMonthlyReportResponse{
		LeaveTotal:  leave.Aggregate(entries),
		JalaliYear:  jalaliYear,
		JalaliMonth: jalaliMonth,
	}, nil
}

// JalaliYearlyReport implements leave.LeaveService.
func (l *LeaveServiceImpl) JalaliYearlyReport(ctx context.Context, userID string, jalaliYear int) (leave.JalaliYearlyReportResponse, error) {
	from, to, err := jalali.YearRange(jalaliYear, l.location)
	if err != nil {
		return leave.JalaliYearlyReportResponse{}, err
	}

	entries, err := l.LeaveRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return leave.JalaliYearlyReportResponse{}, err
	}

	return leave.JalaliYearlyReportResponse{
		LeaveTotal: leave.AggregateYearly(entries),
		JalaliYear: jalaliYear,
	}, nil
}
