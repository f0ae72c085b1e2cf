package repository

import "time"

// CreateEventOptions holds the parameters for persisting a new event.
// Date must already be normalized to local midnight by the caller.
type CreateEventOptions struct {
	OwnerID     string
	Date        time.Time
	EventName   string
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Description string
}

// UpdateEventOptions is a partial update; nil fields are left untouched.
// Date, when present, must already be normalized to local midnight.
type UpdateEventOptions struct {
	OwnerID     string
	ID          string
	Date        *time.Time
	EventName   *string
	StartTime   *string
	EndTime     *string
	Description *string
}
