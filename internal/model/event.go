package model

import (
	"fmt"
	"time"
)

// CalendarEvent is a single scheduled event owned by one user.
// Date carries day precision only: time-of-day is zeroed to local midnight
// before every write. StartTime and EndTime are zero-padded 24h "HH:MM"
// strings compared as minutes since midnight.
type CalendarEvent struct {
	ID          string    // assigned by persistence, empty until first save
	OwnerID     string    // immutable after creation
	Date        time.Time // calendar day, time-of-day 00:00:00.000
	EventName   string    // 1..200 chars
	StartTime   string    // "HH:MM"
	EndTime     string    // "HH:MM"
	Description string    // 0..1000 chars
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClockMinutes converts an "HH:MM" clock string to minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return h*60 + m, nil
}

// StartMinutes returns StartTime as minutes since midnight, -1 if malformed.
func (e CalendarEvent) StartMinutes() int {
	m, err := ClockMinutes(e.StartTime)
	if err != nil {
		return -1
	}
	return m
}

// EndMinutes returns EndTime as minutes since midnight, -1 if malformed.
func (e CalendarEvent) EndMinutes() int {
	m, err := ClockMinutes(e.EndTime)
	if err != nil {
		return -1
	}
	return m
}

// EndInstant is the event's calendar day combined with its end clock time,
// the reference point for past/future classification.
func (e CalendarEvent) EndInstant() time.Time {
	m := e.EndMinutes()
	if m < 0 {
		m = 0
	}
	d := e.Date.In(time.Local)
	return time.Date(d.Year(), d.Month(), d.Day(), m/60, m%60, 0, 0, time.Local)
}
