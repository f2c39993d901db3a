package leave

import "time"

// LeaveEntry is one absence record for a user on a specific date. Both times
// absent means a full-day leave; both present means an hourly leave covering
// a sub-interval of the date. Entries never cross midnight.
type LeaveEntry struct {
	ID        string
	UserID    string
	LeaveDate time.Time // date only

	// Wall-clock times normalized with Clock; the date part carries no
	// meaning.
	StartTime *time.Time
	EndTime   *time.Time

	Reason *string

	// Derived at insertion
	JalaliDate      string
	JalaliDayOfWeek string
	JalaliMonth     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *LeaveEntry) IsFullDay() bool {
	return l.StartTime == nil && l.EndTime == nil
}

func (l *LeaveEntry) IsHourly() bool {
	return l.StartTime != nil && l.EndTime != nil
}

// HourlyDuration is the length of an hourly entry; zero for full-day
// entries.
func (l *LeaveEntry) HourlyDuration() time.Duration {
	if !l.IsHourly() {
		return 0
	}
	return l.EndTime.Sub(*l.StartTime)
}

// Clock builds a comparable wall-clock value. All stored and parsed times go
// through this anchor so Before/After and Sub behave as time-of-day math.
func Clock(hour, minute, second int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)
}

// NormalizeClock re-anchors any parsed time to the shared clock reference.
func NormalizeClock(t time.Time) time.Time {
	return Clock(t.Hour(), t.Minute(), t.Second())
}
