package usecase

import (
	"context"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
)

// Watch opens a live feed of the caller's events. The use case holds at most
// one active subscription: opening a new feed cancels the previous one
// instead of stacking, including when the owner context changed.
func (uc *implUseCase) Watch(ctx context.Context, sc model.Scope) (repository.Subscription, error) {
	uc.watchMu.Lock()
	defer uc.watchMu.Unlock()

	if uc.watchSub != nil {
		uc.watchSub.Cancel()
		uc.watchSub = nil
	}

	sub, err := uc.repo.Watch(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Watch: %v", err)
		return nil, err
	}

	uc.watchOwner = sc.UserID
	uc.watchSub = sub
	uc.l.Infof(ctx, "uc.Watch: feed opened for owner=%s", sc.UserID)
	return sub, nil
}
