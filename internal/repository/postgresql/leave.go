package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, user_id, leave_date, start_time, end_time, reason,
	jalali_date, jalali_day_of_week, jalali_month, created_at, updated_at`

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, entry leave.LeaveEntry) (leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_entries (
			user_id, leave_date, start_time, end_time, reason,
			jalali_date, jalali_day_of_week, jalali_month
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.LeaveDate,
		pgTimeFromClock(entry.StartTime),
		pgTimeFromClock(entry.EndTime),
		entry.Reason,
		entry.JalaliDate,
		entry.JalaliDayOfWeek,
		entry.JalaliMonth,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveEntry{}, leave.ErrDuplicateLeave
		}
		return leave.LeaveEntry{}, fmt.Errorf("failed to create leave entry: %w", err)
	}

	return entry, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string, userID string) (leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_entries
		WHERE id = $1 AND user_id = $2
	`

	entry, err := scanLeaveEntry(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveEntry{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveEntry{}, fmt.Errorf("failed to get leave entry: %w", err)
	}

	return entry, nil
}

// ListByUser implements leave.LeaveRepository.
func (l *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_entries
		WHERE user_id = $1
		ORDER BY leave_date ASC, start_time ASC NULLS FIRST
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entries: %w", err)
	}
	defer rows.Close()

	return collectLeaveEntries(rows)
}

// ListByUserDate implements leave.LeaveRepository.
func (l *leaveRepository) ListByUserDate(ctx context.Context, userID string, date time.Time) ([]leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_entries
		WHERE user_id = $1 AND leave_date = $2
		ORDER BY start_time ASC NULLS FIRST
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entries for date: %w", err)
	}
	defer rows.Close()

	return collectLeaveEntries(rows)
}

// ListByUserRange implements leave.LeaveRepository.
func (l *leaveRepository) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_entries
		WHERE user_id = $1
		  AND leave_date >= $2
		  AND leave_date < $3
		ORDER BY leave_date ASC, start_time ASC NULLS FIRST
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entries in range: %w", err)
	}
	defer rows.Close()

	return collectLeaveEntries(rows)
}

// ListHourlyByUserRange implements leave.LeaveRepository.
func (l *leaveRepository) ListHourlyByUserRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveEntry, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_entries
		WHERE user_id = $1
		  AND leave_date >= $2
		  AND leave_date < $3
		  AND start_time IS NOT NULL
		  AND end_time IS NOT NULL
		ORDER BY leave_date ASC, start_time ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly leave entries: %w", err)
	}
	defer rows.Close()

	return collectLeaveEntries(rows)
}

// CountByUserRange implements leave.LeaveRepository.
func (l *leaveRepository) CountByUserRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT COUNT(*)
		FROM leave_entries
		WHERE user_id = $1
		  AND leave_date >= $2
		  AND leave_date < $3
	`

	var count int64
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leave entries: %w", err)
	}
	return count, nil
}

// Delete implements leave.LeaveRepository.
func (l *leaveRepository) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete leave entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// LockUser implements leave.LeaveRepository.
func (l *leaveRepository) LockUser(ctx context.Context, userID string) error {
	return lockUser(ctx, GetQuerier(ctx, l.db), userID)
}

// clockFromPgTime converts a Postgres TIME value into the anchored
// wall-clock representation used by the leave domain.
func clockFromPgTime(t pgtype.Time) *time.Time {
	if !t.Valid {
		return nil
	}
	clock := leave.Clock(0, 0, 0).Add(time.Duration(t.Microseconds) * time.Microsecond)
	return &clock
}

func pgTimeFromClock(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	micros := (int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())) * 1_000_000
	return pgtype.Time{Microseconds: micros, Valid: true}
}

func scanLeaveEntry(row pgx.Row) (leave.LeaveEntry, error) {
	var entry leave.LeaveEntry
	var start, end pgtype.Time
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.LeaveDate, &start, &end, &entry.Reason,
		&entry.JalaliDate, &entry.JalaliDayOfWeek, &entry.JalaliMonth,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveEntry{}, err
	}
	entry.StartTime = clockFromPgTime(start)
	entry.EndTime = clockFromPgTime(end)
	return entry, nil
}

func collectLeaveEntries(rows pgx.Rows) ([]leave.LeaveEntry, error) {
	var entries []leave.LeaveEntry
	for rows.Next() {
		entry, err := scanLeaveEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave entries: %w", err)
	}
	return entries, nil
}
