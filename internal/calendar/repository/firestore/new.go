package firestore

import (
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
	pkgLog "study-platform-calendar/pkg/log"
)

const (
	eventsCollection   = "calendarEvents"
	countersCollection = "counters"
	counterField       = "events"
)

type implRepository struct {
	client *firestore.Client
	l      pkgLog.Logger
	quota  int // max events per owner, enforced transactionally on create
}

// New creates a Firestore-backed calendar Repository.
func New(client *firestore.Client, l pkgLog.Logger, quota int) repository.Repository {
	if client == nil {
		panic("calendar/repository/firestore: client is required")
	}
	return &implRepository{client: client, l: l, quota: quota}
}

func (r *implRepository) events() *firestore.CollectionRef {
	return r.client.Collection(eventsCollection)
}

func (r *implRepository) counter(ownerID string) *firestore.DocumentRef {
	return r.client.Collection(countersCollection).Doc(ownerID)
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendar/repository/firestore.%s", method)
}

// docEvent is the persisted document shape. Field names match the
// collection's composite (ownerId, date, startTime) index.
type docEvent struct {
	OwnerID     string    `firestore:"ownerId"`
	Date        time.Time `firestore:"date"` // day precision, 00:00:00.000
	EventName   string    `firestore:"eventName"`
	StartTime   string    `firestore:"startTime"`
	EndTime     string    `firestore:"endTime"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `firestore:"updatedAt,serverTimestamp"`
}

// counterDoc mirrors the per-owner quota counter document.
type counterDoc struct {
	Events int64 `firestore:"events"`
}

func (d docEvent) toModel(id string) model.CalendarEvent {
	return model.CalendarEvent{
		ID:          id,
		OwnerID:     d.OwnerID,
		Date:        d.Date.In(time.Local),
		EventName:   d.EventName,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
