package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
)

// Create writes the event document and increments the owner's quota counter
// in one transaction. The counter read and the document write commit
// atomically, so two concurrent creates cannot both pass the quota check.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	ref := r.events().NewDoc()
	counterRef := r.counter(opt.OwnerID)

	doc := docEvent{
		OwnerID:     opt.OwnerID,
		Date:        opt.Date,
		EventName:   opt.EventName,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Description: opt.Description,
		// CreatedAt/UpdatedAt zero: filled by the serverTimestamp sentinel.
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var count int64
		snap, err := tx.Get(counterRef)
		switch {
		case status.Code(err) == codes.NotFound:
			count = 0
		case err != nil:
			return err
		default:
			var c counterDoc
			if err := snap.DataTo(&c); err != nil {
				return err
			}
			count = c.Events
		}

		if count >= int64(r.quota) {
			return repository.ErrQuotaExceeded
		}

		if err := tx.Create(ref, doc); err != nil {
			return err
		}
		return tx.Set(counterRef, counterDoc{Events: count + 1})
	})
	if errors.Is(err, repository.ErrQuotaExceeded) {
		return model.CalendarEvent{}, repository.ErrQuotaExceeded
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.CalendarEvent{}, repository.ErrFailedToInsert
	}

	return r.readBack(ctx, "Create", ref)
}

// Update applies a partial single-document update after an ownership check.
func (r *implRepository) Update(ctx context.Context, opt repository.UpdateEventOptions) (model.CalendarEvent, error) {
	if _, err := r.GetOne(ctx, opt.OwnerID, opt.ID); err != nil {
		return model.CalendarEvent{}, err
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if opt.Date != nil {
		updates = append(updates, firestore.Update{Path: "date", Value: *opt.Date})
	}
	if opt.EventName != nil {
		updates = append(updates, firestore.Update{Path: "eventName", Value: *opt.EventName})
	}
	if opt.StartTime != nil {
		updates = append(updates, firestore.Update{Path: "startTime", Value: *opt.StartTime})
	}
	if opt.EndTime != nil {
		updates = append(updates, firestore.Update{Path: "endTime", Value: *opt.EndTime})
	}
	if opt.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *opt.Description})
	}

	ref := r.events().Doc(opt.ID)
	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.CalendarEvent{}, repository.ErrEventNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.CalendarEvent{}, repository.ErrFailedToUpdate
	}

	return r.readBack(ctx, "Update", ref)
}

// Delete removes the event and decrements the owner's counter atomically.
func (r *implRepository) Delete(ctx context.Context, ownerID, id string) error {
	ref := r.events().Doc(id)
	counterRef := r.counter(ownerID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return repository.ErrEventNotFound
		}
		if err != nil {
			return err
		}
		var d docEvent
		if err := snap.DataTo(&d); err != nil {
			return err
		}
		if d.OwnerID != ownerID {
			return repository.ErrEventNotFound
		}

		var count int64
		counterSnap, err := tx.Get(counterRef)
		if err == nil {
			var c counterDoc
			if err := counterSnap.DataTo(&c); err != nil {
				return err
			}
			count = c.Events
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Delete(ref); err != nil {
			return err
		}
		if count > 0 {
			count--
		}
		return tx.Set(counterRef, counterDoc{Events: count})
	})
	if errors.Is(err, repository.ErrEventNotFound) {
		return repository.ErrEventNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// readBack fetches the committed document so the returned model carries the
// server-assigned timestamps.
func (r *implRepository) readBack(ctx context.Context, method string, ref *firestore.DocumentRef) (model.CalendarEvent, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s read-back: %v", r.dsn(method), err)
		return model.CalendarEvent{}, repository.ErrFailedToQuery
	}
	var d docEvent
	if err := snap.DataTo(&d); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn(method), err)
		return model.CalendarEvent{}, repository.ErrFailedToQuery
	}
	return d.toModel(snap.Ref.ID), nil
}
