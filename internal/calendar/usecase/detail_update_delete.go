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

// Update applies a partial update. Field checks run only for fields present
// in the payload; the time-order invariant is checked against the stored
// record for whichever side the payload omits. The quota is not re-checked.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	if err := calendar.ValidateForUpdate(input); err != nil {
		return calendar.UpdateEventOutput{}, err
	}

	existing, err := uc.repo.GetOne(ctx, sc.UserID, input.ID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return calendar.UpdateEventOutput{}, calendar.ErrEventNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOne: %v", err)
		return calendar.UpdateEventOutput{}, err
	}

	// Merge times with the stored record so a one-sided change still honors
	// the start-before-end invariant.
	start, end := existing.StartTime, existing.EndTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	if err := calendar.ValidateTimeSpan(start, end); err != nil {
		return calendar.UpdateEventOutput{}, err
	}

	opt := repository.UpdateEventOptions{
		OwnerID:     sc.UserID,
		ID:          input.ID,
		EventName:   input.EventName,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Description: input.Description,
	}
	if input.Date != nil {
		date, err := datenorm.Normalize(input.Date)
		if err != nil {
			return calendar.UpdateEventOutput{}, fmt.Errorf("%w: %v", calendar.ErrInvalidDate, err)
		}
		day := datenorm.StartOfDay(date)
		opt.Date = &day
	}

	event, err := uc.repo.Update(ctx, opt)
	if errors.Is(err, repository.ErrEventNotFound) {
		return calendar.UpdateEventOutput{}, calendar.ErrEventNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update repo.Update: %v", err)
		return calendar.UpdateEventOutput{}, err
	}

	return calendar.UpdateEventOutput{Event: event}, nil
}

// Delete removes one event owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.Delete(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrEventNotFound) {
		return calendar.ErrEventNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: owner=%s event=%s", sc.UserID, id)
	return nil
}
