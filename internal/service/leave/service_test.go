package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hamkar/worklog-backend-go/internal/domain/leave"
	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	entries []leave.LeaveEntry
}

func (f *fakeLeaveRepo) Create(ctx context.Context, entry leave.LeaveEntry) (leave.LeaveEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string, userID string) (leave.LeaveEntry, error) {
	for _, entry := range f.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return leave.LeaveEntry{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveEntry, error) {
	return f.entries, nil
}

func (f *fakeLeaveRepo) ListByUserDate(ctx context.Context, userID string, date time.Time) ([]leave.LeaveEntry, error) {
	var out []leave.LeaveEntry
	for _, entry := range f.entries {
		if entry.LeaveDate.Equal(date) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveEntry, error) {
	var out []leave.LeaveEntry
	for _, entry := range f.entries {
		if !entry.LeaveDate.Before(from) && entry.LeaveDate.Before(to) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListHourlyByUserRange(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveEntry, error) {
	all, _ := f.ListByUserRange(ctx, userID, from, to)
	var out []leave.LeaveEntry
	for _, entry := range all {
		if entry.IsHourly() {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountByUserRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	all, _ := f.ListByUserRange(ctx, userID, from, to)
	return int64(len(all)), nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeLeaveRepo) LockUser(ctx context.Context, userID string) error {
	return nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{ID: id}, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByTelegramID(ctx context.Context, telegramID string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func clockPtr(hour, minute int) *time.Time {
	c := leave.Clock(hour, minute, 0)
	return &c
}

func fullDayOn(loc *time.Location, year int, month time.Month, day int) leave.LeaveEntry {
	return leave.LeaveEntry{
		UserID:    "u1",
		LeaveDate: time.Date(year, month, day, 0, 0, 0, 0, loc),
	}
}

func hourlyOn(loc *time.Location, year int, month time.Month, day, fromHour, fromMin, toHour, toMin int) leave.LeaveEntry {
	entry := fullDayOn(loc, year, month, day)
	entry.StartTime = clockPtr(fromHour, fromMin)
	entry.EndTime = clockPtr(toHour, toMin)
	return entry
}

func TestLeaveService_MonthlyCount(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	repo := &fakeLeaveRepo{entries: []leave.LeaveEntry{
		fullDayOn(loc, 2024, time.April, 1),
		hourlyOn(loc, 2024, time.April, 2, 9, 0, 11, 0),
		fullDayOn(loc, 2024, time.May, 1),
	}}
	svc := NewLeaveService(nil, repo, &fakeUserRepo{}, loc)

	report, err := svc.MonthlyCount(context.Background(), "u1", 2024, time.April)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalLeaves)
	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 4, report.Month)
}

func TestLeaveService_MonthlyHourlyReport(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	repo := &fakeLeaveRepo{entries: []leave.LeaveEntry{
		hourlyOn(loc, 2024, time.April, 2, 9, 0, 11, 30),
		hourlyOn(loc, 2024, time.April, 10, 14, 0, 15, 0),
		// Full-day entries contribute nothing to the hourly totals.
		fullDayOn(loc, 2024, time.April, 3),
	}}
	svc := NewLeaveService(nil, repo, &fakeUserRepo{}, loc)

	report, err := svc.MonthlyHourlyReport(context.Background(), "u1", 2024, time.April)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalHours)
	assert.Equal(t, 30, report.TotalMinutes)
	assert.Len(t, report.Leaves, 2)
}

func TestLeaveService_JalaliMonthlyReport(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	// Farvardin 1403 spans 2024-03-20 through 2024-04-19.
	repo := &fakeLeaveRepo{entries: []leave.LeaveEntry{
		fullDayOn(loc, 2024, time.March, 25),
		hourlyOn(loc, 2024, time.April, 10, 9, 0, 11, 30),
		// Ordibehesht, outside the window.
		fullDayOn(loc, 2024, time.April, 25),
	}}
	svc := NewLeaveService(nil, repo, &fakeUserRepo{}, loc)

	report, err := svc.JalaliMonthlyReport(context.Background(), "u1", 1403, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Days)
	assert.Equal(t, 2, report.Hours)
	assert.Equal(t, 30, report.Minutes)
}

func TestLeaveService_JalaliYearlyReport_CountsEveryEntryAsDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	repo := &fakeLeaveRepo{entries: []leave.LeaveEntry{
		fullDayOn(loc, 2024, time.March, 25),
		hourlyOn(loc, 2024, time.April, 10, 9, 0, 11, 0),
		hourlyOn(loc, 2024, time.June, 1, 14, 0, 15, 0),
	}}
	svc := NewLeaveService(nil, repo, &fakeUserRepo{}, loc)

	report, err := svc.JalaliYearlyReport(context.Background(), "u1", 1403)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Days)
	assert.Equal(t, 3, report.Hours)
	assert.Equal(t, 0, report.Minutes)
}

func TestLeaveService_JalaliYearlyReport_InvalidYear(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	svc := NewLeaveService(nil, &fakeLeaveRepo{}, &fakeUserRepo{}, loc)

	_, err = svc.JalaliYearlyReport(context.Background(), "u1", 0)
	assert.Error(t, err)
}
