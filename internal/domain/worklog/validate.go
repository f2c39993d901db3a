package worklog

import (
	"fmt"
	"time"
)

// ValidateNewEvent decides whether a proposed event is admissible given a
// snapshot of the user's history: `last` is the user's most recent event
// overall, `firstOfDay` the earliest event within the calendar day of
// recordedAt. Either may be nil. It never mutates state; the caller persists
// the event only on a nil return.
//
// Two rules are enforced. The sequence rule compares against the most recent
// event across all days: statuses must strictly alternate. The first-of-day
// rule requires the day's earliest event to be "started"; a proposed event
// that would tie the current first-of-day timestamp counts as first.
func ValidateNewEvent(last, firstOfDay *WorkEvent, status Status, recordedAt time.Time) error {
	if status != StatusStarted && status != StatusEnded {
		return ErrInvalidStatus
	}

	if last != nil && last.Status == status {
		if status == StatusStarted {
			return fmt.Errorf("session already started at %s: %w",
				last.RecordedAt.Format("2006-01-02 15:04"), ErrSequenceViolation)
		}
		return fmt.Errorf("no open session to end: %w", ErrSequenceViolation)
	}

	if firstOfDay == nil && status != StatusStarted {
		return ErrFirstEventMustStart
	}
	if firstOfDay != nil && recordedAt.Equal(firstOfDay.RecordedAt) && status != StatusStarted {
		return ErrFirstEventMustStart
	}

	return nil
}

// DayWindow returns the half-open local calendar day [midnight, next
// midnight) containing t in loc.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
