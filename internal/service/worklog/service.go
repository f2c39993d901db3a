package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/hamkar/worklog-backend-go/internal/domain/worklog"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jalali"
	"github.com/hamkar/worklog-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type WorkLogServiceImpl struct {
	db *database.DB
	worklog.WorkEventRepository
	user.UserRepository
	location *time.Location
}

func NewWorkLogService(db *database.DB, workEventRepository worklog.WorkEventRepository, userRepository user.UserRepository, location *time.Location) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		db:                  db,
		WorkEventRepository: workEventRepository,
		UserRepository:      userRepository,
		location:            location,
	}
}

// CreateEvent implements worklog.WorkLogService. The read-validate-write
// sequence runs inside a transaction holding a per-user advisory lock, so
// two concurrent submissions for the same user serialize and the loser is
// validated against the winner's event.
func (w *WorkLogServiceImpl) CreateEvent(ctx context.Context, userID string, req worklog.CreateWorkEventRequest) (worklog.WorkEventResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkEventResponse{}, err
	}

	if _, err := w.UserRepository.GetByID(ctx, userID); err != nil {
		return worklog.WorkEventResponse{}, err
	}

	recordedAt := req.ResolveRecordedAt(w.location)

	var created worklog.WorkEvent
	err := postgresql.WithTransaction(ctx, w.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := w.WorkEventRepository.LockUser(txCtx, userID); err != nil {
			return err
		}

		last, err := w.WorkEventRepository.MostRecent(txCtx, userID)
		if err != nil {
			return err
		}

		dayStart, dayEnd := worklog.DayWindow(recordedAt, w.location)
		firstOfDay, err := w.WorkEventRepository.FirstInRange(txCtx, userID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		if err := worklog.ValidateNewEvent(last, firstOfDay, worklog.Status(req.Status), recordedAt); err != nil {
			return err
		}

		parts := jalali.PartsOf(recordedAt)
		created, err = w.WorkEventRepository.Create(txCtx, worklog.WorkEvent{
			UserID:          userID,
			RecordedAt:      recordedAt,
			Status:          worklog.Status(req.Status),
			Comment:         req.Comment,
			DayOfWeek:       recordedAt.Weekday().String(),
			Month:           recordedAt.Month().String(),
			JalaliDate:      parts.Date,
			JalaliDayOfWeek: parts.DayOfWeek,
			JalaliMonth:     parts.Month,
		})
		return err
	})
	if err != nil {
		return worklog.WorkEventResponse{}, err
	}

	return worklog.NewWorkEventResponse(created), nil
}

// ListEvents implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) ListEvents(ctx context.Context, userID string) ([]worklog.WorkEventResponse, error) {
	events, err := w.WorkEventRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return worklog.NewWorkEventResponses(events), nil
}

// GetEvent implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) GetEvent(ctx context.Context, userID, id string) (worklog.WorkEventResponse, error) {
	event, err := w.WorkEventRepository.GetByID(ctx, id, userID)
	if err != nil {
		return worklog.WorkEventResponse{}, err
	}
	return worklog.NewWorkEventResponse(event), nil
}

// DeleteEvent implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) DeleteEvent(ctx context.Context, userID, id string) error {
	return w.WorkEventRepository.Delete(ctx, id, userID)
}

// DayReport implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) DayReport(ctx context.Context, userID string, date time.Time) (worklog.DayReportResponse, error) {
	dayStart, dayEnd := worklog.DayWindow(date, w.location)
	events, err := w.WorkEventRepository.ListByUserRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return worklog.DayReportResponse{}, err
	}

	return worklog.DayReportResponse{
		TotalTime: worklog.FormatDayTotal(worklog.Duration(events)),
	}, nil
}

// MonthlyReport implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (worklog.MonthlyReportResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, w.location)
	to := from.AddDate(0, 1, 0)

	events, err := w.WorkEventRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return worklog.MonthlyReportResponse{}, err
	}

	return worklog.MonthlyReportResponse{
		TotalWorkTime: worklog.NewMonthlyTotal(worklog.Duration(events)),
		WorkLogs:      worklog.NewWorkEventResponses(events),
	}, nil
}

// JalaliMonthlyReport implements worklog.WorkLogService.
func (w *WorkLogServiceImpl) JalaliMonthlyReport(ctx context.Context, userID string, jalaliYear, jalaliMonth int) (worklog.JalaliMonthlyReportResponse, error) {
	from, to, err := jalali.MonthRange(jalaliYear, jalaliMonth, w.location)
	if err != nil {
		return worklog.JalaliMonthlyReportResponse{}, err
	}

	events, err := w.WorkEventRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return worklog.JalaliMonthlyReportResponse{}, fmt.Errorf("failed to list work events for jalali month: %w", err)
	}

	return worklog.JalaliMonthlyReportResponse{
		JalaliYear:  jalaliYear,
		JalaliMonth: jalaliMonth,
		TotalHours:  worklog.Aggregate(events),
		WorkLogs:    worklog.NewWorkEventResponses(events),
	}, nil
}
