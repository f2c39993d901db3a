// Package jalali wraps the Persian (Solar Hijri) calendar library with the
// small surface the worklog and leave domains need: derived display parts,
// Jalali date construction, and Gregorian ranges for Jalali months and years.
// The conversion arithmetic itself belongs to the library.
package jalali

import (
	"errors"
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// ErrInvalidDate is returned when a Jalali year/month/day triple does not
// name a real calendar date.
var ErrInvalidDate = errors.New("invalid jalali calendar date")

// English transliterations matching the month and weekday names the API has
// always reported.
var monthNames = [12]string{
	"Farvardin", "Ordibehesht", "Khordad",
	"Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar",
	"Dey", "Bahman", "Esfand",
}

var weekdayNames = [7]string{
	"Shanbeh", "Yekshanbeh", "Doshanbeh",
	"Seshanbeh", "Chaharshanbeh", "Panjshanbeh", "Jomeh",
}

// Parts holds the derived Jalali display fields cached on each record.
type Parts struct {
	Date      string // yyyy-MM-dd
	DayOfWeek string
	Month     string
}

// PartsOf computes the derived Jalali fields for a point in time. The
// result depends on the location attached to t.
func PartsOf(t time.Time) Parts {
	pt := ptime.New(t)
	return Parts{
		Date:      pt.Format("yyyy-MM-dd"),
		DayOfWeek: weekdayNames[int(pt.Weekday())%7],
		Month:     monthNames[int(pt.Month())-1],
	}
}

// MonthName returns the English transliteration of a Jalali month (1-12).
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month %d: %w", month, ErrInvalidDate)
	}
	return monthNames[month-1], nil
}

// Date converts a Jalali date to the midnight instant of that day in loc.
func Date(year, month, day int, loc *time.Location) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}
	return ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, loc).Time(), nil
}

// MonthRange returns the half-open Gregorian interval [start, end) covering
// one Jalali month in loc.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	start, err := Date(year, month, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	end, err := Date(nextYear, nextMonth, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// YearRange returns the half-open Gregorian interval [start, end) covering
// one Jalali year in loc.
func YearRange(year int, loc *time.Location) (time.Time, time.Time, error) {
	start, err := Date(year, 1, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := Date(year+1, 1, 1, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// YearMonth reports the Jalali year and month containing t.
func YearMonth(t time.Time) (int, int) {
	pt := ptime.New(t)
	return pt.Year(), int(pt.Month())
}

func daysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	default:
		if ptime.Date(year, ptime.Farvardin, 1, 0, 0, 0, 0, time.UTC).IsLeap() {
			return 30
		}
		return 29
	}
}
