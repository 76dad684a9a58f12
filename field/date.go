package field

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time-of-day component. The
// standard library has no civil date type, and using time.Time for
// both kinds would erase the date/datetime distinction DateField and
// DateTime enforce.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date with the given components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current date in the local time zone.
func Today() Date {
	return DateOf(time.Now())
}

// Time returns the midnight instant of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
