package leave

import "errors"

var (
	// ErrFullDayConflictsWithExisting: a full-day leave may not be added on a
	// date that already has any leave entry.
	ErrFullDayConflictsWithExisting = errors.New("cannot add a full-day leave because leave already exists on this day")

	// ErrHourlyConflictsWithFullDay: hourly leave may not coexist with a
	// full-day leave on the same date.
	ErrHourlyConflictsWithFullDay = errors.New("cannot add hourly leave because a full-day leave exists on this day")

	// ErrIntervalOverlap: hourly intervals conflict under inclusive bounds,
	// so intervals that merely touch at an endpoint are rejected too.
	ErrIntervalOverlap = errors.New("leave overlaps an existing leave entry")

	ErrInvalidInterval = errors.New("start_time and end_time must both be set or both be empty")
	ErrDuplicateLeave  = errors.New("an identical leave entry already exists")
	ErrLeaveNotFound   = errors.New("leave entry not found")
)
