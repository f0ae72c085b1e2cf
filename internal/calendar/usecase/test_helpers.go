package usecase

import (
	"context"
	"time"

	"study-platform-calendar/internal/calendar/repository"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockRepo is an in-memory Repository for use case tests.
type mockRepo struct {
	events    map[string]model.CalendarEvent
	nextID    int
	count     int // owner count reported to the quota pre-check
	createErr error
	queryErr  error

	createCalls []repository.CreateEventOptions
	updateCalls []repository.UpdateEventOptions
	deleteCalls []string
	watchCalls  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{events: map[string]model.CalendarEvent{}}
}

func (m *mockRepo) ByOwner(ctx context.Context, ownerID string) ([]model.CalendarEvent, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []model.CalendarEvent
	for _, e := range m.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) ByOwnerAndDay(ctx context.Context, ownerID string, day time.Time) ([]model.CalendarEvent, error) {
	all, err := m.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []model.CalendarEvent
	for _, e := range all {
		if datenorm.SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) ByOwnerAndMonth(ctx context.Context, ownerID string, year int, month time.Month) ([]model.CalendarEvent, error) {
	all, err := m.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []model.CalendarEvent
	for _, e := range all {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	return m.count, nil
}

func (m *mockRepo) GetOne(ctx context.Context, ownerID, id string) (model.CalendarEvent, error) {
	e, ok := m.events[id]
	if !ok || e.OwnerID != ownerID {
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	m.createCalls = append(m.createCalls, opt)
	if m.createErr != nil {
		return model.CalendarEvent{}, m.createErr
	}
	m.nextID++
	e := model.CalendarEvent{
		ID:          string(rune('a' + m.nextID - 1)),
		OwnerID:     opt.OwnerID,
		Date:        opt.Date,
		EventName:   opt.EventName,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Description: opt.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.events[e.ID] = e
	m.count++
	return e, nil
}

func (m *mockRepo) Update(ctx context.Context, opt repository.UpdateEventOptions) (model.CalendarEvent, error) {
	m.updateCalls = append(m.updateCalls, opt)
	e, ok := m.events[opt.ID]
	if !ok || e.OwnerID != opt.OwnerID {
		return model.CalendarEvent{}, repository.ErrEventNotFound
	}
	if opt.Date != nil {
		e.Date = *opt.Date
	}
	if opt.EventName != nil {
		e.EventName = *opt.EventName
	}
	if opt.StartTime != nil {
		e.StartTime = *opt.StartTime
	}
	if opt.EndTime != nil {
		e.EndTime = *opt.EndTime
	}
	if opt.Description != nil {
		e.Description = *opt.Description
	}
	e.UpdatedAt = time.Now()
	m.events[opt.ID] = e
	return e, nil
}

func (m *mockRepo) Delete(ctx context.Context, ownerID, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	e, ok := m.events[id]
	if !ok || e.OwnerID != ownerID {
		return repository.ErrEventNotFound
	}
	delete(m.events, id)
	m.count--
	return nil
}

func (m *mockRepo) Watch(ctx context.Context, ownerID string) (repository.Subscription, error) {
	m.watchCalls++
	return newMockSubscription(), nil
}

type mockSubscription struct {
	ch        chan []model.CalendarEvent
	cancelled bool
}

func newMockSubscription() *mockSubscription {
	return &mockSubscription{ch: make(chan []model.CalendarEvent, 1)}
}

func (s *mockSubscription) Events() <-chan []model.CalendarEvent { return s.ch }

func (s *mockSubscription) Cancel() {
	if !s.cancelled {
		s.cancelled = true
		close(s.ch)
	}
}
