package datenorm

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnrecognizedInput is returned for a nil or unparsable date input.
// Unrecognized shapes are an error, never a silent epoch-zero fallback.
var ErrUnrecognizedInput = errors.New("unrecognized date input")

// DayKeyFormat is the canonical day key layout, e.g. "2024-03-05".
const DayKeyFormat = "2006-01-02"

// Normalize converts a tagged date input into a time.Time.
// A LocalDate passes through unchanged, so normalizing an already-normalized
// value yields the identical instant.
func Normalize(in Input) (time.Time, error) {
	switch v := in.(type) {
	case LocalDate:
		return time.Time(v), nil
	case Timestamp:
		return time.Unix(v.Seconds, int64(v.Nanos)).In(time.Local), nil
	case EpochMillis:
		return time.UnixMilli(int64(v)).In(time.Local), nil
	case ISOString:
		return parseISO(string(v))
	case nil:
		return time.Time{}, ErrUnrecognizedInput
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrUnrecognizedInput, in)
	}
}

func parseISO(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local), nil
	}
	if t, err := time.ParseInLocation(DayKeyFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedInput, s)
}

// StartOfDay returns local midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay returns 23:59:59.999 of t's calendar day, the inclusive upper
// bound used by day and month range queries.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey returns the canonical "YYYY-MM-DD" key for t's calendar day.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(DayKeyFormat)
}

// MonthRange returns the inclusive [first-day 00:00:00.000, last-day
// 23:59:59.999] bounds of the given month. Month is 1-based.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := EndOfDay(start.AddDate(0, 1, -1))
	return start, end
}
