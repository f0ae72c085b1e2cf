package usecase

import (
	"sync"

	"study-platform-calendar/internal/calendar/repository"
	pkgLog "study-platform-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// One live feed per use case: replaced, never stacked, when the owner
	// context changes.
	watchMu    sync.Mutex
	watchOwner string
	watchSub   repository.Subscription
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
