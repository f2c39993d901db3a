package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_FullDayAndHourly(t *testing.T) {
	entries := []LeaveEntry{
		fullDayEntry(),
		hourlyEntry(9, 0, 11, 30),
	}

	total := Aggregate(entries)
	assert.Equal(t, LeaveTotal{Days: 1, Hours: 2, Minutes: 30}, total)
}

func TestAggregate_OnlyHourly(t *testing.T) {
	entries := []LeaveEntry{
		hourlyEntry(9, 0, 10, 15),
		hourlyEntry(13, 0, 14, 50),
	}

	total := Aggregate(entries)
	assert.Equal(t, LeaveTotal{Days: 0, Hours: 3, Minutes: 5}, total)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, LeaveTotal{}, Aggregate(nil))
}

func TestAggregateYearly_CountsEveryEntryAsDay(t *testing.T) {
	entries := []LeaveEntry{
		fullDayEntry(),
		hourlyEntry(9, 0, 11, 0),
	}

	total := AggregateYearly(entries)
	assert.Equal(t, LeaveTotal{Days: 2, Hours: 2, Minutes: 0}, total)
}

func TestHourlySum(t *testing.T) {
	entries := []LeaveEntry{
		fullDayEntry(),
		hourlyEntry(9, 0, 10, 30),
	}

	assert.Equal(t, 90*time.Minute, HourlySum(entries))
}

func TestHourlyDuration_FullDayIsZero(t *testing.T) {
	entry := fullDayEntry()
	assert.Equal(t, time.Duration(0), entry.HourlyDuration())
}
