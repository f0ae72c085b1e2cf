package datenorm

import "time"

// Input is the closed set of date shapes accepted at the system boundary.
// Persistence clients and HTTP payloads tag the shape explicitly instead of
// duck-typing it; Normalize resolves the union exactly once.
type Input interface {
	isDateInput()
}

// LocalDate is a date value already in canonical in-process form.
type LocalDate time.Time

// Timestamp is the document-store timestamp shape: epoch seconds plus
// a sub-second nanosecond fraction.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// EpochMillis is a date expressed as milliseconds since the Unix epoch.
type EpochMillis int64

// ISOString is an ISO-8601 date or datetime string.
type ISOString string

func (LocalDate) isDateInput()   {}
func (Timestamp) isDateInput()   {}
func (EpochMillis) isDateInput() {}
func (ISOString) isDateInput()   {}
