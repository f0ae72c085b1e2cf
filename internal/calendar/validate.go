package calendar

import (
	"study-platform-calendar/internal/model"
)

// ValidateForCreate gates a new event. Checks run in order, first failure
// wins: owner quota, event name length, description length, time order.
// The count is a read-then-act snapshot; the persistence layer re-checks it
// transactionally (see repository/firestore).
func ValidateForCreate(existingCountForOwner int, candidate model.CalendarEvent) error {
	if existingCountForOwner >= MaxEventsPerOwner {
		return ErrQuotaExceeded
	}
	if l := len(candidate.EventName); l < EventNameMinLen || l > EventNameMaxLen {
		return ErrEventNameLength
	}
	if len(candidate.Description) > DescriptionMaxLen {
		return ErrDescriptionLength
	}
	return ValidateTimeSpan(candidate.StartTime, candidate.EndTime)
}

// ValidateForUpdate applies the field checks only to fields present in the
// partial payload. Quota is not re-checked on update. Time order is checked
// once the caller has merged the missing side from the stored record.
func ValidateForUpdate(input UpdateEventInput) error {
	if input.EventName != nil {
		if l := len(*input.EventName); l < EventNameMinLen || l > EventNameMaxLen {
			return ErrEventNameLength
		}
	}
	if input.Description != nil && len(*input.Description) > DescriptionMaxLen {
		return ErrDescriptionLength
	}
	if input.StartTime != nil && input.EndTime != nil {
		return ValidateTimeSpan(*input.StartTime, *input.EndTime)
	}
	return nil
}

// ValidateTimeSpan requires start strictly before end as minutes since
// midnight. Overnight spans (end past midnight) compare lower and are
// rejected: cross-midnight events are unsupported.
func ValidateTimeSpan(start, end string) error {
	startMin, err := model.ClockMinutes(start)
	if err != nil {
		return ErrInvalidClock
	}
	endMin, err := model.ClockMinutes(end)
	if err != nil {
		return ErrInvalidClock
	}
	if startMin >= endMin {
		return ErrTimeOrder
	}
	return nil
}
