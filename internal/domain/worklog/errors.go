package worklog

import "errors"

var (
	// ErrSequenceViolation: a started event may not follow a started event,
	// and an ended event may not follow an ended event.
	ErrSequenceViolation = errors.New("work events must alternate between started and ended")

	// ErrFirstEventMustStart: the first event of a calendar day must be "started".
	ErrFirstEventMustStart = errors.New("the first record of the day must be 'started'")

	ErrInvalidStatus     = errors.New("status must be 'started' or 'ended'")
	ErrWorkEventNotFound = errors.New("work event not found")
)
