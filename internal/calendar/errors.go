package calendar

import "errors"

// Validation errors are raised synchronously before any persistence call and
// are never retried; the caller must correct the input.
var (
	ErrQuotaExceeded     = errors.New("maximum limit of 200 events reached, delete some events before creating a new one")
	ErrEventNameLength   = errors.New("event name must be between 1 and 200 characters")
	ErrDescriptionLength = errors.New("event description cannot exceed 1000 characters")
	ErrTimeOrder         = errors.New("end time must be after start time")
	ErrInvalidClock      = errors.New("times must be zero-padded 24-hour HH:MM values")
	ErrInvalidDate       = errors.New("invalid event date")
	ErrEventNotFound     = errors.New("event not found")
)
