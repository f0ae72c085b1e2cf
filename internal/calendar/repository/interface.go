package repository

import (
	"context"
	"time"

	"study-platform-calendar/internal/model"
)

// Repository is the persistence contract the calendar engine consumes.
// Read shapes return events already ordered the way the document store's
// composite (ownerId, date, startTime) index serves them; day and month
// lookups use inclusive [00:00:00.000, 23:59:59.999] bounds.
type Repository interface {
	// ByOwner returns all events of an owner, (date asc, startTime asc).
	ByOwner(ctx context.Context, ownerID string) ([]model.CalendarEvent, error)

	// ByOwnerAndDay returns the owner's events on one calendar day, startTime asc.
	ByOwnerAndDay(ctx context.Context, ownerID string, day time.Time) ([]model.CalendarEvent, error)

	// ByOwnerAndMonth returns the owner's events in one month, (date asc, startTime asc).
	ByOwnerAndMonth(ctx context.Context, ownerID string, year int, month time.Month) ([]model.CalendarEvent, error)

	// CountByOwner returns the owner's current event count for the quota pre-check.
	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// GetOne returns a single event by id scoped to its owner.
	// Not-found is ErrEventNotFound, never a zero value with nil error.
	GetOne(ctx context.Context, ownerID, id string) (model.CalendarEvent, error)

	// Create persists a new event. The owner's quota is re-checked inside
	// the same transaction that writes the document; at the limit it fails
	// with ErrQuotaExceeded without writing.
	Create(ctx context.Context, opt CreateEventOptions) (model.CalendarEvent, error)

	// Update applies a partial single-document update.
	Update(ctx context.Context, opt UpdateEventOptions) (model.CalendarEvent, error)

	// Delete removes a single event.
	Delete(ctx context.Context, ownerID, id string) error

	// Watch opens a live feed of the owner's events. Every change pushes the
	// full current result set; the caller owns the handle and must Cancel it.
	Watch(ctx context.Context, ownerID string) (Subscription, error)
}

// Subscription is an explicit cancellable feed handle. Cancel is idempotent;
// the events channel is closed after cancellation or a terminal feed error.
type Subscription interface {
	Events() <-chan []model.CalendarEvent
	Cancel()
}
