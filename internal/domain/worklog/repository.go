package worklog

import (
	"context"
	"time"
)

// WorkEventRepository defines data access for work events. Listing methods
// return events in ascending recorded_at order; ranges are half-open
// [from, to).
type WorkEventRepository interface {
	// Create inserts an event with its derived calendar fields.
	Create(ctx context.Context, event WorkEvent) (WorkEvent, error)

	GetByID(ctx context.Context, id string, userID string) (WorkEvent, error)

	ListByUser(ctx context.Context, userID string) ([]WorkEvent, error)

	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]WorkEvent, error)

	// MostRecent returns the user's latest event across all days, or nil.
	MostRecent(ctx context.Context, userID string) (*WorkEvent, error)

	// FirstInRange returns the earliest event within [from, to), or nil.
	FirstInRange(ctx context.Context, userID string, from, to time.Time) (*WorkEvent, error)

	Delete(ctx context.Context, id string, userID string) error

	// LockUser serializes read-validate-write sequences for one user. It
	// must be called inside a transaction; the lock is released on commit
	// or rollback.
	LockUser(ctx context.Context, userID string) error
}
