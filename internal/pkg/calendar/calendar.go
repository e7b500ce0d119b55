// Package calendar provides the date arithmetic shared by attendance
// filtering, payroll periods, and tenure measurement.
package calendar

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("end date is before start date")

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PeriodBounds returns the inclusive start and end instants of a calendar
// month in the given location. The end bound sits just before the first
// instant of the next month, so timestamp comparisons with <= stay inside
// the month.
func PeriodBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// WithinRange reports whether t falls inside [start, end], inclusive on
// both ends.
func WithinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Diff measures the calendar time elapsed between two dates as whole years,
// months, and days. Months are added to the start date with day-of-month
// clamping (Jan 31 plus one month lands on the last day of February), then
// the remainder is counted in days. Returns ErrInvalidDateRange when from is
// after to.
func Diff(from, to time.Time) (years, months, days int, err error) {
	fromDate := toDate(from)
	toDay := toDate(to)

	if fromDate.After(toDay) {
		return 0, 0, 0, ErrInvalidDateRange
	}

	totalMonths := (toDay.Year()-fromDate.Year())*12 + int(toDay.Month()) - int(fromDate.Month())
	anchor := addMonthsClamped(fromDate, totalMonths)
	if anchor.After(toDay) {
		totalMonths--
		anchor = addMonthsClamped(fromDate, totalMonths)
	}

	years = totalMonths / 12
	months = totalMonths % 12
	days = int(toDay.Sub(anchor).Hours() / 24)
	return years, months, days, nil
}

// toDate truncates a timestamp to its date in UTC so day subtraction is not
// affected by zone offsets or DST.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addMonthsClamped(date time.Time, months int) time.Time {
	year := date.Year()
	month := int(date.Month()) + months
	// normalize month into 1..12
	year += (month - 1) / 12
	month = (month-1)%12 + 1
	if month < 1 {
		month += 12
		year--
	}

	day := date.Day()
	if maxDay := DaysInMonth(year, time.Month(month)); day > maxDay {
		day = maxDay
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
