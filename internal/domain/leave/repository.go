package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave entries. Date ranges are
// half-open [from, to) over leave_date.
type LeaveRepository interface {
	// Create inserts an entry with its derived calendar fields. Inserting a
	// duplicate (user, date, start, end) tuple returns ErrDuplicateLeave.
	Create(ctx context.Context, entry LeaveEntry) (LeaveEntry, error)

	GetByID(ctx context.Context, id string, userID string) (LeaveEntry, error)

	ListByUser(ctx context.Context, userID string) ([]LeaveEntry, error)

	// ListByUserDate returns all entries for one user on one date.
	ListByUserDate(ctx context.Context, userID string, date time.Time) ([]LeaveEntry, error)

	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]LeaveEntry, error)

	// ListHourlyByUserRange returns only entries that have both times set.
	ListHourlyByUserRange(ctx context.Context, userID string, from, to time.Time) ([]LeaveEntry, error)

	CountByUserRange(ctx context.Context, userID string, from, to time.Time) (int64, error)

	Delete(ctx context.Context, id string, userID string) error

	// LockUser serializes read-validate-write sequences for one user. It
	// must be called inside a transaction.
	LockUser(ctx context.Context, userID string) error
}
