package leave

import "time"

// LeaveTotal reports full-day leave as a day count and hourly leave as
// hours+minutes. The two figures are independent and are never combined
// into one unit.
type LeaveTotal struct {
	Days    int `json:"total_days"`
	Hours   int `json:"total_hours"`
	Minutes int `json:"total_minutes"`
}

// Aggregate classifies each entry: hourly entries add their interval to the
// hour total, full-day entries increment the day count.
func Aggregate(entries []LeaveEntry) LeaveTotal {
	var days int
	var hourly time.Duration

	for _, entry := range entries {
		if entry.IsHourly() {
			hourly += entry.HourlyDuration()
		} else {
			days++
		}
	}
	return totalOf(days, hourly)
}

// AggregateYearly counts every entry as one leave day; hourly entries
// additionally contribute their interval to the hour total. This is the
// yearly rollup shape, coarser than the monthly one.
func AggregateYearly(entries []LeaveEntry) LeaveTotal {
	var hourly time.Duration

	for _, entry := range entries {
		if entry.IsHourly() {
			hourly += entry.HourlyDuration()
		}
	}
	return totalOf(len(entries), hourly)
}

// HourlySum totals only the hourly intervals of entries.
func HourlySum(entries []LeaveEntry) time.Duration {
	var hourly time.Duration
	for _, entry := range entries {
		hourly += entry.HourlyDuration()
	}
	return hourly
}

func totalOf(days int, hourly time.Duration) LeaveTotal {
	secs := int64(hourly / time.Second)
	return LeaveTotal{
		Days:    days,
		Hours:   int(secs / 3600),
		Minutes: int(secs % 3600 / 60),
	}
}
