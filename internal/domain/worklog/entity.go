package worklog

import "time"

type Status string

const (
	StatusStarted Status = "started"
	StatusEnded   Status = "ended"
)

// WorkEvent is one timestamped transition of a user's work status. The
// calendar display fields are computed once at insertion from RecordedAt and
// never mutated afterwards.
type WorkEvent struct {
	ID         string
	UserID     string
	RecordedAt time.Time
	Status     Status
	Comment    *string

	// Derived at insertion
	DayOfWeek       string
	Month           string
	JalaliDate      string
	JalaliDayOfWeek string
	JalaliMonth     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
