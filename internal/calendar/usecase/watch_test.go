package usecase

import (
	"context"
	"testing"

	"study-platform-calendar/internal/model"
)

func TestWatch_ReplacesPreviousSubscription(t *testing.T) {
	repo := newMockRepo()
	uc := New(&mockLogger{}, repo)

	first, err := uc.Watch(context.Background(), testScope)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Switching owner context replaces rather than stacks.
	second, err := uc.Watch(context.Background(), model.Scope{UserID: "owner-2"})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if repo.watchCalls != 2 {
		t.Errorf("watchCalls = %d, want 2", repo.watchCalls)
	}
	if !first.(*mockSubscription).cancelled {
		t.Error("previous subscription must be cancelled on replacement")
	}
	if second.(*mockSubscription).cancelled {
		t.Error("new subscription must stay open")
	}
}
