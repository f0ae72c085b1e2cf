package usecase

import (
	"context"
	"fmt"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// List returns every event of the caller in the canonical
// (date asc, startTime asc) ordering.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (calendar.ListEventsOutput, error) {
	events, err := uc.repo.ByOwner(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: %v", err)
		return calendar.ListEventsOutput{}, err
	}
	return calendar.ListEventsOutput{Events: calendar.SortByDateThenTime(events)}, nil
}

// ListByDay returns the caller's events on one calendar day, startTime asc.
func (uc *implUseCase) ListByDay(ctx context.Context, sc model.Scope, input calendar.ListByDayInput) (calendar.ListEventsOutput, error) {
	day, err := datenorm.Normalize(input.Day)
	if err != nil {
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
	}

	events, err := uc.repo.ByOwnerAndDay(ctx, sc.UserID, day)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDay: %v", err)
		return calendar.ListEventsOutput{}, err
	}
	return calendar.ListEventsOutput{Events: calendar.SortForDay(events)}, nil
}

// ListByMonth returns the caller's events in one month, (date, startTime) asc.
func (uc *implUseCase) ListByMonth(ctx context.Context, sc model.Scope, input calendar.ListByMonthInput) (calendar.ListEventsOutput, error) {
	events, err := uc.repo.ByOwnerAndMonth(ctx, sc.UserID, input.Year, input.Month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByMonth: %v", err)
		return calendar.ListEventsOutput{}, err
	}
	return calendar.ListEventsOutput{Events: calendar.SortByDateThenTime(events)}, nil
}
