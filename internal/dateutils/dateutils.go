// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	"02.01.2006",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// StartOfDay returns the date at 00:00:00.000000000 in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the date at 23:59:59.999999999 in its location.
// Using the last representable instant keeps range checks inclusive for
// records dated anywhere on the end day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// InRange reports whether t falls within [start-of-day(start),
// end-of-day(end)]. A zero start or end leaves that side unbounded.
func InRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(StartOfDay(start)) {
		return false
	}
	if !end.IsZero() && t.After(EndOfDay(end)) {
		return false
	}
	return true
}

// DaysUntil returns the whole days from asOf's calendar date to target's
// calendar date. Negative values mean target is in the past.
func DaysUntil(asOf, target time.Time) int {
	from := StartOfDay(asOf)
	to := StartOfDay(target)
	return int(to.Sub(from).Hours() / 24)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
