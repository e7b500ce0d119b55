package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2100, time.February, 28},
		{2000, time.February, 29},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "DaysInMonth(%d, %v)", tt.year, tt.month)
	}
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantStart   time.Time
		wantLastDay time.Time
	}{
		{
			"31-day month",
			2024, time.March,
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			"leap February",
			2024, time.February,
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			"non-leap February",
			2023, time.February,
			time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.February, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			"30-day month",
			2024, time.April,
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 30, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodBounds(tt.year, tt.month, time.UTC)

			assert.True(t, start.Equal(tt.wantStart), "start = %v, want %v", start, tt.wantStart)
			assert.False(t, end.Before(tt.wantLastDay), "end %v excludes the last second of the month", end)

			firstOfNext := tt.wantStart.AddDate(0, 1, 0)
			assert.True(t, end.Before(firstOfNext), "end %v reaches into the next month", end)
		})
	}
}

func TestWithinRange(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC)

	assert.True(t, WithinRange(start, start, end), "start bound is inclusive")
	assert.True(t, WithinRange(end, start, end), "end bound is inclusive")
	assert.False(t, WithinRange(start.Add(-time.Millisecond), start, end))
	assert.False(t, WithinRange(end.Add(time.Millisecond), start, end))
}

func TestDiff(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		from, to   time.Time
		wantYears  int
		wantMonths int
		wantDays   int
	}{
		{"plain difference", date(2022, time.March, 10), date(2024, time.June, 15), 2, 3, 5},
		{"same day", date(2024, time.June, 15), date(2024, time.June, 15), 0, 0, 0},
		{"day borrow", date(2024, time.January, 20), date(2024, time.March, 10), 0, 1, 19},
		{"month-end clamp", date(2023, time.January, 31), date(2023, time.March, 1), 0, 1, 1},
		{"anniversary", date(2020, time.February, 29), date(2024, time.February, 29), 4, 0, 0},
		{"leap hire in common year", date(2020, time.February, 29), date(2023, time.March, 1), 3, 0, 1},
		{"under a month", date(2024, time.June, 1), date(2024, time.June, 30), 0, 0, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, months, days, err := Diff(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYears, years, "years")
			assert.Equal(t, tt.wantMonths, months, "months")
			assert.Equal(t, tt.wantDays, days, "days")
		})
	}
}

func TestDiff_ReversedRange(t *testing.T) {
	from := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)

	_, _, _, err := Diff(from, to)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

// Sweeping the end date forward one day at a time must never produce a
// negative component or a days value that jumps by more than one.
func TestDiff_DailySweepStaysConsistent(t *testing.T) {
	from := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	to := from

	prevDays := 0
	for i := 0; i < 800; i++ {
		years, months, days, err := Diff(from, to)
		require.NoError(t, err, "Diff(%v, %v)", from, to)
		require.True(t, years >= 0 && months >= 0 && days >= 0,
			"Diff(%v, %v) = %dy %dm %dd, negative component", from, to, years, months, days)
		require.Less(t, months, 12, "Diff(%v, %v)", from, to)
		require.LessOrEqual(t, days, prevDays+1,
			"Diff(%v, %v) days jumped from %d to %d", from, to, prevDays, days)
		prevDays = days
		to = to.AddDate(0, 0, 1)
	}
}

func TestDiff_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2022, time.March, 10, 23, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 15, 1, 0, 0, 0, time.UTC)

	years, months, days, err := Diff(from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, years)
	assert.Equal(t, 3, months)
	assert.Equal(t, 5, days)
}
