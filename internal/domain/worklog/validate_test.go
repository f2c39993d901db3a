package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var tehran = mustLoad("Asia/Tehran")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func event(status Status, at time.Time) *WorkEvent {
	return &WorkEvent{UserID: "u1", Status: status, RecordedAt: at}
}

func TestValidateNewEvent_FirstEverMustStart(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, tehran)

	err := ValidateNewEvent(nil, nil, StatusStarted, at)
	assert.NoError(t, err)

	err = ValidateNewEvent(nil, nil, StatusEnded, at)
	assert.ErrorIs(t, err, ErrFirstEventMustStart)
}

func TestValidateNewEvent_SequenceViolation(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, tehran)
	later := at.Add(2 * time.Hour)

	// started cannot follow started
	err := ValidateNewEvent(event(StatusStarted, at), event(StatusStarted, at), StatusStarted, later)
	assert.ErrorIs(t, err, ErrSequenceViolation)

	// ended cannot follow ended
	err = ValidateNewEvent(event(StatusEnded, at), event(StatusStarted, at.Add(-time.Hour)), StatusEnded, later)
	assert.ErrorIs(t, err, ErrSequenceViolation)

	// alternation is accepted
	err = ValidateNewEvent(event(StatusStarted, at), event(StatusStarted, at), StatusEnded, later)
	assert.NoError(t, err)
}

func TestValidateNewEvent_SequenceRuleSpansDays(t *testing.T) {
	// An open session from yesterday blocks today's start even though today
	// has no events yet.
	yesterday := time.Date(2024, 4, 30, 22, 0, 0, 0, tehran)
	today := time.Date(2024, 5, 1, 9, 0, 0, 0, tehran)

	err := ValidateNewEvent(event(StatusStarted, yesterday), nil, StatusStarted, today)
	assert.ErrorIs(t, err, ErrSequenceViolation)
}

func TestValidateNewEvent_FirstOfDayRule(t *testing.T) {
	openSession := event(StatusStarted, time.Date(2024, 4, 30, 22, 0, 0, 0, tehran))
	today := time.Date(2024, 5, 1, 9, 0, 0, 0, tehran)

	// An open session from yesterday satisfies the sequence rule for a
	// proposed "ended", but a day with no events yet may not open with it.
	err := ValidateNewEvent(openSession, nil, StatusEnded, today)
	assert.ErrorIs(t, err, ErrFirstEventMustStart)

	// A proposed event tying the current first-of-day timestamp counts as
	// first and must be "started".
	first := event(StatusStarted, today)
	err = ValidateNewEvent(first, first, StatusEnded, today)
	assert.ErrorIs(t, err, ErrFirstEventMustStart)

	// Later the same day an "ended" event is fine.
	err = ValidateNewEvent(first, first, StatusEnded, today.Add(8*time.Hour))
	assert.NoError(t, err)
}

func TestValidateNewEvent_InvalidStatus(t *testing.T) {
	err := ValidateNewEvent(nil, nil, Status("paused"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDayWindow(t *testing.T) {
	// 23:30 UTC on April 30 is already May 1 in Tehran.
	at := time.Date(2024, 4, 30, 23, 30, 0, 0, time.UTC)
	start, end := DayWindow(at, tehran)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, tehran), start)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, tehran), end)
}
