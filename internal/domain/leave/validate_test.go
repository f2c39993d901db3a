package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clockPtr(hour, minute int) *time.Time {
	t := Clock(hour, minute, 0)
	return &t
}

func hourlyEntry(startHour, startMin, endHour, endMin int) LeaveEntry {
	return LeaveEntry{
		UserID:    "u1",
		StartTime: clockPtr(startHour, startMin),
		EndTime:   clockPtr(endHour, endMin),
	}
}

func fullDayEntry() LeaveEntry {
	return LeaveEntry{UserID: "u1"}
}

func TestValidateNewLeave_FullDayOnEmptyDate(t *testing.T) {
	assert.NoError(t, ValidateNewLeave(nil, nil, nil))
}

func TestValidateNewLeave_FullDayConflicts(t *testing.T) {
	// Any existing entry blocks a new full-day leave.
	err := ValidateNewLeave([]LeaveEntry{hourlyEntry(9, 0, 10, 0)}, nil, nil)
	assert.ErrorIs(t, err, ErrFullDayConflictsWithExisting)

	err = ValidateNewLeave([]LeaveEntry{fullDayEntry()}, nil, nil)
	assert.ErrorIs(t, err, ErrFullDayConflictsWithExisting)
}

func TestValidateNewLeave_HourlyAgainstFullDay(t *testing.T) {
	err := ValidateNewLeave([]LeaveEntry{fullDayEntry()}, clockPtr(9, 0), clockPtr(10, 0))
	assert.ErrorIs(t, err, ErrHourlyConflictsWithFullDay)
}

func TestValidateNewLeave_IntervalOverlap(t *testing.T) {
	existing := []LeaveEntry{hourlyEntry(9, 0, 10, 0)}

	// Plain overlap.
	err := ValidateNewLeave(existing, clockPtr(9, 30), clockPtr(11, 0))
	assert.ErrorIs(t, err, ErrIntervalOverlap)

	// Touching endpoints count as overlap under the inclusive comparison.
	err = ValidateNewLeave(existing, clockPtr(10, 0), clockPtr(11, 0))
	assert.ErrorIs(t, err, ErrIntervalOverlap)

	// One minute of clearance is accepted.
	err = ValidateNewLeave(existing, clockPtr(10, 1), clockPtr(11, 0))
	assert.NoError(t, err)

	// Fully before the existing interval.
	err = ValidateNewLeave(existing, clockPtr(7, 0), clockPtr(8, 59))
	assert.NoError(t, err)
}

func TestValidateNewLeave_SecondHourlyOnSameDay(t *testing.T) {
	existing := []LeaveEntry{
		hourlyEntry(9, 0, 10, 0),
		hourlyEntry(14, 0, 15, 0),
	}

	err := ValidateNewLeave(existing, clockPtr(11, 0), clockPtr(12, 0))
	assert.NoError(t, err)

	err = ValidateNewLeave(existing, clockPtr(14, 30), clockPtr(16, 0))
	assert.ErrorIs(t, err, ErrIntervalOverlap)
}

func TestValidateNewLeave_MixedInterval(t *testing.T) {
	err := ValidateNewLeave(nil, clockPtr(9, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
