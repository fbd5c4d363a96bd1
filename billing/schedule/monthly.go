// Package schedule computes the dates on which the recurring billing job runs.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"encore.dev/beta/errs"
)

// now is replaced in tests.
var now = time.Now

// ValidationError reports a reference date or start day that cannot be used
// to compute a schedule.
type ValidationError struct {
	Field string
	Value int
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Msg)
}

// IsLeapYear uses the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// NextScheduledDate returns the first date at or after year-month-day that falls
// on startDay. When a month is shorter than startDay the last day of that month
// is used instead, separately for the current and the following month.
// The result is midnight UTC.
func NextScheduledDate(year int, month time.Month, day int, startDay int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, &ValidationError{Field: "month", Value: int(month), Msg: "must be between 1 and 12"}
	}

	daysInThisMonth := DaysInMonth(year, month)
	if day < 1 || day > daysInThisMonth {
		return time.Time{}, &ValidationError{
			Field: "day",
			Value: day,
			Msg:   fmt.Sprintf("must be between 1 and %d for %04d-%02d", daysInThisMonth, year, int(month)),
		}
	}
	if startDay < 1 || startDay > 31 {
		return time.Time{}, &ValidationError{Field: "start day", Value: startDay, Msg: "must be between 1 and 31"}
	}

	nextYear, nextMonth := year, month+1
	if nextMonth > time.December {
		nextYear, nextMonth = year+1, time.January
	}

	startDayThisMonth := min(startDay, daysInThisMonth)
	startDayNextMonth := min(startDay, DaysInMonth(nextYear, nextMonth))

	switch {
	case day < startDayThisMonth:
		return date(year, month, startDayThisMonth), nil
	case day == startDayThisMonth:
		return date(year, month, day), nil
	default:
		return date(nextYear, nextMonth, startDayNextMonth), nil
	}
}

// NextScheduledDateFrom uses the UTC calendar date of t as the reference.
func NextScheduledDateFrom(t time.Time, startDay int) (time.Time, error) {
	year, month, day := t.UTC().Date()
	return NextScheduledDate(year, month, day, startDay)
}

// NextScheduledDateFromNow returns the next billing date counted from today.
func NextScheduledDateFromNow(startDay int) (time.Time, error) {
	return NextScheduledDateFrom(now(), startDay)
}

// AsAPIError maps a validation failure to an InvalidArgument API error.
func AsAPIError(err error) error {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &errs.Error{Code: errs.InvalidArgument, Message: verr.Error()}
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to compute billing date"}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
