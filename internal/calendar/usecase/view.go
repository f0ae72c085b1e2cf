package usecase

import (
	"context"
	"fmt"
	"time"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// MonthView builds the fixed 42-cell grid for the requested month from the
// caller's events of that month. Pure recomputation: the grid is derived
// from the query snapshot and the wall clock, nothing is cached.
func (uc *implUseCase) MonthView(ctx context.Context, sc model.Scope, input calendar.MonthViewInput) (calendar.MonthViewOutput, error) {
	events, err := uc.repo.ByOwnerAndMonth(ctx, sc.UserID, input.Year, input.Month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MonthView: %v", err)
		return calendar.MonthViewOutput{}, err
	}

	var selected *time.Time
	if input.Selected != nil {
		sel, err := datenorm.Normalize(input.Selected)
		if err != nil {
			return calendar.MonthViewOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
		}
		day := datenorm.StartOfDay(sel)
		selected = &day
	}

	return calendar.MonthViewOutput{
		Year:  input.Year,
		Month: input.Month,
		Days:  calendar.BuildGrid(input.Year, input.Month, events, time.Now(), selected),
	}, nil
}

// Upcoming groups the caller's events of the next N days into day buckets.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, input calendar.UpcomingInput) (calendar.UpcomingOutput, error) {
	events, err := uc.repo.ByOwner(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming: %v", err)
		return calendar.UpcomingOutput{}, err
	}

	buckets := calendar.GroupUpcoming(events, time.Now(), input.Days, input.HidePast)
	return calendar.UpcomingOutput{Buckets: buckets}, nil
}
