package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/domain/worklog"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workEventRepository struct {
	db *database.DB
}

func NewWorkEventRepository(db *database.DB) worklog.WorkEventRepository {
	return &workEventRepository{db: db}
}

const workEventColumns = `id, user_id, recorded_at, status, comment,
	day_of_week, month, jalali_date, jalali_day_of_week, jalali_month,
	created_at, updated_at`

// Create implements worklog.WorkEventRepository.
func (w *workEventRepository) Create(ctx context.Context, event worklog.WorkEvent) (worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_events (
			user_id, recorded_at, status, comment,
			day_of_week, month, jalali_date, jalali_day_of_week, jalali_month
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.UserID,
		event.RecordedAt,
		event.Status,
		event.Comment,
		event.DayOfWeek,
		event.Month,
		event.JalaliDate,
		event.JalaliDayOfWeek,
		event.JalaliMonth,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return worklog.WorkEvent{}, fmt.Errorf("failed to create work event: %w", err)
	}

	return event, nil
}

// GetByID implements worklog.WorkEventRepository.
func (w *workEventRepository) GetByID(ctx context.Context, id string, userID string) (worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE id = $1 AND user_id = $2
	`

	event, err := scanWorkEvent(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.WorkEvent{}, worklog.ErrWorkEventNotFound
		}
		return worklog.WorkEvent{}, fmt.Errorf("failed to get work event: %w", err)
	}

	return event, nil
}

// ListByUser implements worklog.WorkEventRepository.
func (w *workEventRepository) ListByUser(ctx context.Context, userID string) ([]worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE user_id = $1
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work events: %w", err)
	}
	defer rows.Close()

	return collectWorkEvents(rows)
}

// ListByUserRange implements worklog.WorkEventRepository.
func (w *workEventRepository) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work events in range: %w", err)
	}
	defer rows.Close()

	return collectWorkEvents(rows)
}

// MostRecent implements worklog.WorkEventRepository.
func (w *workEventRepository) MostRecent(ctx context.Context, userID string) (*worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	event, err := scanWorkEvent(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no events yet
		}
		return nil, fmt.Errorf("failed to get most recent work event: %w", err)
	}

	return &event, nil
}

// FirstInRange implements worklog.WorkEventRepository.
func (w *workEventRepository) FirstInRange(ctx context.Context, userID string, from, to time.Time) (*worklog.WorkEvent, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY recorded_at ASC
		LIMIT 1
	`

	event, err := scanWorkEvent(q.QueryRow(ctx, query, userID, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no events in the window
		}
		return nil, fmt.Errorf("failed to get first work event in range: %w", err)
	}

	return &event, nil
}

// Delete implements worklog.WorkEventRepository.
func (w *workEventRepository) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete work event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrWorkEventNotFound
	}
	return nil
}

// LockUser implements worklog.WorkEventRepository.
func (w *workEventRepository) LockUser(ctx context.Context, userID string) error {
	return lockUser(ctx, GetQuerier(ctx, w.db), userID)
}

func scanWorkEvent(row pgx.Row) (worklog.WorkEvent, error) {
	var event worklog.WorkEvent
	err := row.Scan(
		&event.ID, &event.UserID, &event.RecordedAt, &event.Status, &event.Comment,
		&event.DayOfWeek, &event.Month, &event.JalaliDate, &event.JalaliDayOfWeek, &event.JalaliMonth,
		&event.CreatedAt, &event.UpdatedAt,
	)
	return event, err
}

func collectWorkEvents(rows pgx.Rows) ([]worklog.WorkEvent, error) {
	var events []worklog.WorkEvent
	for rows.Next() {
		event, err := scanWorkEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work events: %w", err)
	}
	return events, nil
}
