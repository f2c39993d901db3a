package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(hour, min int) time.Time {
	return time.Date(2024, 5, 1, hour, min, 0, 0, time.UTC)
}

func TestAggregate_SingleSession(t *testing.T) {
	events := []WorkEvent{
		{Status: StatusStarted, RecordedAt: day(9, 0)},
		{Status: StatusEnded, RecordedAt: day(17, 0)},
	}

	assert.Equal(t, WorkTotal{Days: 0, Hours: 8, Minutes: 0}, Aggregate(events))
}

func TestAggregate_UnmatchedStartDiscarded(t *testing.T) {
	// A second start overwrites the first; only 10:00-17:00 counts.
	events := []WorkEvent{
		{Status: StatusStarted, RecordedAt: day(9, 0)},
		{Status: StatusStarted, RecordedAt: day(10, 0)},
		{Status: StatusEnded, RecordedAt: day(17, 0)},
	}

	assert.Equal(t, WorkTotal{Days: 0, Hours: 7, Minutes: 0}, Aggregate(events))
}

func TestAggregate_OrphanEndIgnored(t *testing.T) {
	events := []WorkEvent{
		{Status: StatusEnded, RecordedAt: day(8, 0)},
		{Status: StatusStarted, RecordedAt: day(9, 0)},
		{Status: StatusEnded, RecordedAt: day(12, 30)},
	}

	assert.Equal(t, WorkTotal{Days: 0, Hours: 3, Minutes: 30}, Aggregate(events))
}

func TestAggregate_TrailingOpenSession(t *testing.T) {
	events := []WorkEvent{
		{Status: StatusStarted, RecordedAt: day(9, 0)},
		{Status: StatusEnded, RecordedAt: day(12, 0)},
		{Status: StatusStarted, RecordedAt: day(13, 0)},
	}

	// The still-open afternoon session contributes nothing.
	assert.Equal(t, WorkTotal{Days: 0, Hours: 3, Minutes: 0}, Aggregate(events))
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, WorkTotal{}, Aggregate(nil))
}

func TestAggregate_SpillsIntoDays(t *testing.T) {
	events := []WorkEvent{
		{Status: StatusStarted, RecordedAt: day(0, 0)},
		{Status: StatusEnded, RecordedAt: day(0, 0).Add(26*time.Hour + 15*time.Minute)},
	}

	assert.Equal(t, WorkTotal{Days: 1, Hours: 2, Minutes: 15}, Aggregate(events))
}

func TestTotalFromDuration_FloorDivision(t *testing.T) {
	d := 90*time.Minute + 59*time.Second
	assert.Equal(t, WorkTotal{Days: 0, Hours: 1, Minutes: 30}, TotalFromDuration(d))
}

func TestNewMonthlyTotal(t *testing.T) {
	total := NewMonthlyTotal(30*time.Hour + 5*time.Minute + 9*time.Second)
	assert.Equal(t, MonthlyTotal{Hours: 30, Minutes: 5, Seconds: 9}, total)
}

func TestFormatDayTotal(t *testing.T) {
	assert.Equal(t, "8 hours, 0 minutes", FormatDayTotal(8*time.Hour))
	assert.Equal(t, "1 hour, 1 minute", FormatDayTotal(time.Hour+time.Minute))
}
