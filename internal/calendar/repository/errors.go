package repository

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrQuotaExceeded  = errors.New("owner event quota exhausted")
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToUpdate = errors.New("failed to update event")
	ErrFailedToDelete = errors.New("failed to delete event")
	ErrFailedToQuery  = errors.New("failed to query events")
)
