package calendar

import (
	"context"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
)

// UseCase is the business logic interface for the calendar domain.
type UseCase interface {
	// Create validates the candidate (quota first) and persists it with the
	// date normalized to local midnight.
	Create(ctx context.Context, sc model.Scope, input CreateEventInput) (CreateEventOutput, error)

	// Update applies a partial update after validating the fields present.
	// The quota is not re-checked on update.
	Update(ctx context.Context, sc model.Scope, input UpdateEventInput) (UpdateEventOutput, error)

	// Delete removes a single event owned by the caller.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// List returns every event of the caller ordered by (date asc, startTime asc).
	List(ctx context.Context, sc model.Scope) (ListEventsOutput, error)

	// ListByDay returns the caller's events on one calendar day, startTime asc.
	ListByDay(ctx context.Context, sc model.Scope, input ListByDayInput) (ListEventsOutput, error)

	// ListByMonth returns the caller's events in one month, (date, startTime) asc.
	ListByMonth(ctx context.Context, sc model.Scope, input ListByMonthInput) (ListEventsOutput, error)

	// MonthView builds the fixed 42-cell grid for a month.
	MonthView(ctx context.Context, sc model.Scope, input MonthViewInput) (MonthViewOutput, error)

	// Upcoming groups the caller's events of the next N days into day buckets.
	Upcoming(ctx context.Context, sc model.Scope, input UpcomingInput) (UpcomingOutput, error)

	// Watch opens a live feed of the caller's events, replacing any feed the
	// use case already holds for this owner. The returned subscription must
	// be cancelled when no longer needed.
	Watch(ctx context.Context, sc model.Scope) (repository.Subscription, error)
}
