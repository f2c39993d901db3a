package jalali

import (
	"errors"
	"testing"
	"time"
)

func TestPartsOf(t *testing.T) {
	cases := []struct {
		in        time.Time
		date      string
		dayOfWeek string
		month     string
	}{
		{time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC), "1403-01-01", "Chaharshanbeh", "Farvardin"},
		{time.Date(2023, 9, 23, 0, 0, 0, 0, time.UTC), "1402-07-01", "Shanbeh", "Mehr"},
		{time.Date(2024, 3, 19, 23, 59, 0, 0, time.UTC), "1402-12-29", "Seshanbeh", "Esfand"},
	}
	for _, c := range cases {
		got := PartsOf(c.in)
		if got.Date != c.date {
			t.Errorf("PartsOf(%v).Date = %q, want %q", c.in, got.Date, c.date)
		}
		if got.DayOfWeek != c.dayOfWeek {
			t.Errorf("PartsOf(%v).DayOfWeek = %q, want %q", c.in, got.DayOfWeek, c.dayOfWeek)
		}
		if got.Month != c.month {
			t.Errorf("PartsOf(%v).Month = %q, want %q", c.in, got.Month, c.month)
		}
	}
}

func TestDate(t *testing.T) {
	got, err := Date(1403, 1, 1, time.UTC)
	if err != nil {
		t.Fatalf("Date(1403, 1, 1) error: %v", err)
	}
	want := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Date(1403, 1, 1) = %v, want %v", got, want)
	}

	// 1403 is a leap year, 1402 is not.
	if _, err := Date(1403, 12, 30, time.UTC); err != nil {
		t.Errorf("Date(1403, 12, 30) error: %v", err)
	}
	invalid := [][3]int{
		{1402, 12, 30},
		{1402, 13, 1},
		{1402, 0, 1},
		{1402, 7, 31},
		{1402, 1, 0},
	}
	for _, c := range invalid {
		if _, err := Date(c[0], c[1], c[2], time.UTC); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Date(%d, %d, %d) error = %v, want ErrInvalidDate", c[0], c[1], c[2], err)
		}
	}
}

func TestMonthRange(t *testing.T) {
	// Mehr 1402 spans the September/October 2023 boundary.
	start, end, err := MonthRange(1402, 7, time.UTC)
	if err != nil {
		t.Fatalf("MonthRange(1402, 7) error: %v", err)
	}
	if want := time.Date(2023, 9, 23, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2023, 10, 23, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}

	// Esfand of a leap year runs through Nowruz eve.
	_, end, err = MonthRange(1403, 12, time.UTC)
	if err != nil {
		t.Fatalf("MonthRange(1403, 12) error: %v", err)
	}
	if want := time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestYearMonth(t *testing.T) {
	y, m := YearMonth(time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC))
	if y != 1402 || m != 7 {
		t.Errorf("YearMonth = %d-%d, want 1402-7", y, m)
	}
}

func TestMonthName(t *testing.T) {
	name, err := MonthName(7)
	if err != nil || name != "Mehr" {
		t.Errorf("MonthName(7) = %q, %v", name, err)
	}
	if _, err := MonthName(13); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("MonthName(13) error = %v, want ErrInvalidDate", err)
	}
}
