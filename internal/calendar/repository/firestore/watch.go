package firestore

import (
	"context"
	"sync"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
)

// Watch opens a snapshot listener on the owner's event query. Every change
// pushes the complete current result set; a slow consumer only ever sees the
// latest state, intermediate snapshots are dropped.
func (r *implRepository) Watch(ctx context.Context, ownerID string) (repository.Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	snaps := r.ownerQuery(ownerID).Snapshots(watchCtx)

	sub := &subscription{
		ch:     make(chan []model.CalendarEvent, 1),
		cancel: cancel,
	}

	go func() {
		defer close(sub.ch)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				// Cancellation and terminal stream errors both end the feed.
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				r.l.Errorf(watchCtx, "%s: %v", r.dsn("Watch"), err)
				continue
			}

			events := make([]model.CalendarEvent, 0, len(docs))
			for _, d := range docs {
				var de docEvent
				if err := d.DataTo(&de); err != nil {
					r.l.Errorf(watchCtx, "%s decode %s: %v", r.dsn("Watch"), d.Ref.ID, err)
					continue
				}
				events = append(events, de.toModel(d.Ref.ID))
			}

			// Latest snapshot wins.
			select {
			case sub.ch <- events:
			default:
				select {
				case <-sub.ch:
				default:
				}
				select {
				case sub.ch <- events:
				default:
				}
			}
		}
	}()

	return sub, nil
}

type subscription struct {
	ch     chan []model.CalendarEvent
	cancel context.CancelFunc
	once   sync.Once
}

func (s *subscription) Events() <-chan []model.CalendarEvent { return s.ch }

func (s *subscription) Cancel() { s.once.Do(s.cancel) }
