package leave

import (
	"fmt"
	"time"
)

// ValidateNewLeave decides whether a proposed leave entry conflicts with the
// user's existing entries on the same date. It never mutates state.
//
// A proposed full-day leave conflicts with any existing entry. A proposed
// hourly leave conflicts with an existing full-day leave, and with any
// existing hourly interval under the inclusive comparison
// existing.start <= proposed.end && proposed.start <= existing.end; touching
// endpoints count as overlap, do not loosen this.
func ValidateNewLeave(existing []LeaveEntry, startTime, endTime *time.Time) error {
	if (startTime == nil) != (endTime == nil) {
		return ErrInvalidInterval
	}

	if startTime == nil {
		if len(existing) > 0 {
			return ErrFullDayConflictsWithExisting
		}
		return nil
	}

	start := NormalizeClock(*startTime)
	end := NormalizeClock(*endTime)

	for _, entry := range existing {
		if entry.IsFullDay() {
			return ErrHourlyConflictsWithFullDay
		}
		if !entry.IsHourly() {
			continue
		}
		if !entry.StartTime.After(end) && !start.After(*entry.EndTime) {
			return fmt.Errorf("existing entry from %s to %s: %w",
				entry.StartTime.Format("15:04"), entry.EndTime.Format("15:04"), ErrIntervalOverlap)
		}
	}
	return nil
}
