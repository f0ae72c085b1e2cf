package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

func (r *implRepository) ownerQuery(ownerID string) firestore.Query {
	return r.events().
		Where("ownerId", "==", ownerID).
		OrderBy("date", firestore.Asc).
		OrderBy("startTime", firestore.Asc)
}

// ByOwner returns all events of an owner ordered by (date, startTime).
func (r *implRepository) ByOwner(ctx context.Context, ownerID string) ([]model.CalendarEvent, error) {
	return r.runQuery(ctx, "ByOwner", r.ownerQuery(ownerID))
}

// ByOwnerAndDay returns the owner's events inside the inclusive
// [day 00:00:00.000, day 23:59:59.999] range, ordered by start time.
func (r *implRepository) ByOwnerAndDay(ctx context.Context, ownerID string, day time.Time) ([]model.CalendarEvent, error) {
	q := r.ownerQuery(ownerID).
		Where("date", ">=", datenorm.StartOfDay(day)).
		Where("date", "<=", datenorm.EndOfDay(day))
	return r.runQuery(ctx, "ByOwnerAndDay", q)
}

// ByOwnerAndMonth returns the owner's events inside the analogous inclusive
// month range, ordered by (date, startTime).
func (r *implRepository) ByOwnerAndMonth(ctx context.Context, ownerID string, year int, month time.Month) ([]model.CalendarEvent, error) {
	start, end := datenorm.MonthRange(year, month)
	q := r.ownerQuery(ownerID).
		Where("date", ">=", start).
		Where("date", "<=", end)
	return r.runQuery(ctx, "ByOwnerAndMonth", q)
}

func (r *implRepository) runQuery(ctx context.Context, method string, q firestore.Query) ([]model.CalendarEvent, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToQuery
	}

	events := make([]model.CalendarEvent, 0, len(snaps))
	for _, snap := range snaps {
		var d docEvent
		if err := snap.DataTo(&d); err != nil {
			r.l.Errorf(ctx, "%s decode %s: %v", r.dsn(method), snap.Ref.ID, err)
			continue
		}
		events = append(events, d.toModel(snap.Ref.ID))
	}
	return events, nil
}

// CountByOwner reads the owner's quota counter document. A missing counter
// means no events were ever created for this owner.
func (r *implRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	snap, err := r.counter(ownerID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountByOwner"), err)
		return 0, repository.ErrFailedToQuery
	}

	var c counterDoc
	if err := snap.DataTo(&c); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("CountByOwner"), err)
		return 0, repository.ErrFailedToQuery
	}
	return int(c.Events), nil
}

// GetOne fetches a single event and checks ownership.
func (r *implRepository) GetOne(ctx context.Context, ownerID, id string) (model.CalendarEvent, error) {
	snap, err := r.events().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.CalendarEvent{}, repository.ErrFailedToQuery
	}

	var d docEvent
	if err := snap.DataTo(&d); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetOne"), err)
		return model.CalendarEvent{}, repository.ErrFailedToQuery
	}
	if d.OwnerID != ownerID {
		// Scoped by owner: another owner's document is indistinguishable
		// from a missing one.
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	return d.toModel(snap.Ref.ID), nil
}
