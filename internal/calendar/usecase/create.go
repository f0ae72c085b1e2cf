package usecase

import (
	"context"
	"errors"
	"fmt"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// Create validates the candidate event and persists it with the date
// normalized to local midnight. The quota pre-check here reads a snapshot
// count; the repository repeats the check transactionally at write time.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	date, err := datenorm.Normalize(input.Date)
	if err != nil {
		return calendar.CreateEventOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
	}
	day := datenorm.StartOfDay(date)

	candidate := model.CalendarEvent{
		OwnerID:     sc.UserID,
		Date:        day,
		EventName:   input.EventName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
	}

	count, err := uc.repo.CountByOwner(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CountByOwner: %v", err)
		return calendar.CreateEventOutput{}, err
	}
	if err := calendar.ValidateForCreate(count, candidate); err != nil {
		return calendar.CreateEventOutput{}, err
	}

	event, err := uc.repo.Create(ctx, repository.CreateEventOptions{
		OwnerID:     sc.UserID,
		Date:        day,
		EventName:   input.EventName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
	})
	if errors.Is(err, repository.ErrQuotaExceeded) {
		// Lost the race between the pre-check and the transactional counter.
		return calendar.CreateEventOutput{}, calendar.ErrQuotaExceeded
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.Create: %v", err)
		return calendar.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: owner=%s event=%s date=%s", sc.UserID, event.ID, datenorm.DayKey(event.Date))
	return calendar.CreateEventOutput{Event: event}, nil
}
