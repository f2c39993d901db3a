package worklog

import "time"

// WorkTotal is an elapsed duration broken into whole days, hours and
// minutes by integer floor division.
type WorkTotal struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Duration sums the worked time of an event sequence in ascending timestamp
// order by pairing each "started" event with the next "ended" event. A start
// overwritten by a later start contributes nothing, and an "ended" event with
// no open start is ignored; malformed histories degrade instead of failing.
func Duration(events []WorkEvent) time.Duration {
	var total time.Duration
	var pendingStart *time.Time

	for _, ev := range events {
		switch ev.Status {
		case StatusStarted:
			t := ev.RecordedAt
			pendingStart = &t
		case StatusEnded:
			if pendingStart != nil {
				total += ev.RecordedAt.Sub(*pendingStart)
				pendingStart = nil
			}
		}
	}
	return total
}

// Aggregate reduces an ordered event sequence to a days/hours/minutes total.
func Aggregate(events []WorkEvent) WorkTotal {
	return TotalFromDuration(Duration(events))
}

// TotalFromDuration splits d into whole days, then hours, then minutes.
func TotalFromDuration(d time.Duration) WorkTotal {
	secs := int64(d / time.Second)
	days := secs / 86400
	rem := secs % 86400
	return WorkTotal{
		Days:    int(days),
		Hours:   int(rem / 3600),
		Minutes: int(rem % 3600 / 60),
	}
}
