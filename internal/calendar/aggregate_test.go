package calendar

import (
	"testing"
	"time"

	"study-platform-calendar/internal/model"
)

func TestSortForDay_ByStartTime(t *testing.T) {
	events := []model.CalendarEvent{
		dayEvent(2024, time.March, 5, "09:00", "10:00"),
		dayEvent(2024, time.March, 5, "08:00", "08:30"),
	}

	sorted := SortForDay(events)
	if sorted[0].StartTime != "08:00" {
		t.Errorf("first event starts %s, want 08:00", sorted[0].StartTime)
	}
	if sorted[1].StartTime != "09:00" {
		t.Errorf("second event starts %s, want 09:00", sorted[1].StartTime)
	}

	// Input order untouched.
	if events[0].StartTime != "09:00" {
		t.Error("SortForDay must not modify its input")
	}
}

func TestSortByDateThenTime_CompositeAndStable(t *testing.T) {
	a := dayEvent(2024, time.March, 6, "09:00", "10:00")
	a.ID = "a"
	b := dayEvent(2024, time.March, 5, "12:00", "13:00")
	b.ID = "b"
	c := dayEvent(2024, time.March, 5, "09:00", "10:00")
	c.ID = "c"
	// Same (date, startTime) as c: stability keeps c before d.
	d := dayEvent(2024, time.March, 5, "09:00", "11:00")
	d.ID = "d"

	sorted := SortByDateThenTime([]model.CalendarEvent{a, b, c, d})

	want := []string{"c", "d", "b", "a"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d = %s, want %s (full order %v)", i, sorted[i].ID, id, ids(sorted))
		}
	}
}

func ids(events []model.CalendarEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestIsPast(t *testing.T) {
	e := dayEvent(2024, time.March, 5, "09:00", "10:00")

	before := time.Date(2024, time.March, 5, 9, 59, 0, 0, time.Local)
	if IsPast(e, before) {
		t.Error("event ending 10:00 is not past at 09:59")
	}

	exactly := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)
	if IsPast(e, exactly) {
		t.Error("strictly-before comparison: not past at exactly 10:00")
	}

	after := time.Date(2024, time.March, 5, 10, 0, 1, 0, time.Local)
	if !IsPast(e, after) {
		t.Error("event ending 10:00 is past at 10:00:01")
	}

	nextDay := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)
	if !IsPast(e, nextDay) {
		t.Error("event is past the following day")
	}
}

func TestGroupUpcoming_WindowAndOrdering(t *testing.T) {
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)

	inWindowLate := dayEvent(2024, time.March, 3, "14:00", "15:00")
	inWindowEarly := dayEvent(2024, time.March, 3, "09:00", "09:30")
	lastDay := dayEvent(2024, time.March, 7, "08:00", "09:00")
	pastDay := dayEvent(2024, time.February, 29, "08:00", "09:00")
	beyond := dayEvent(2024, time.March, 8, "08:00", "09:00")

	buckets := GroupUpcoming(
		[]model.CalendarEvent{beyond, inWindowLate, pastDay, lastDay, inWindowEarly},
		now, 7, false)

	if len(buckets) != 2 {
		t.Fatalf("%d buckets, want 2", len(buckets))
	}
	if buckets[0].Key != "2024-03-03" || buckets[1].Key != "2024-03-07" {
		t.Errorf("bucket keys %s, %s; want 2024-03-03, 2024-03-07", buckets[0].Key, buckets[1].Key)
	}
	if buckets[0].Events[0].Event.StartTime != "09:00" {
		t.Errorf("bucket not sorted by start time: first is %s", buckets[0].Events[0].Event.StartTime)
	}
}

func TestGroupUpcoming_HidePastDropsEmptyBucket(t *testing.T) {
	// now = 2024-03-01T10:00; the only event that day ended 09:00.
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)
	ended := dayEvent(2024, time.March, 1, "08:00", "09:00")
	later := dayEvent(2024, time.March, 2, "11:00", "12:00")

	buckets := GroupUpcoming([]model.CalendarEvent{ended, later}, now, 7, true)

	if len(buckets) != 1 {
		t.Fatalf("%d buckets, want 1 (the emptied day must be omitted)", len(buckets))
	}
	if buckets[0].Key != "2024-03-02" {
		t.Errorf("remaining bucket %s, want 2024-03-02", buckets[0].Key)
	}

	// Without hidePast the ended event stays, flagged.
	buckets = GroupUpcoming([]model.CalendarEvent{ended, later}, now, 7, false)
	if len(buckets) != 2 {
		t.Fatalf("%d buckets, want 2", len(buckets))
	}
	if !buckets[0].Events[0].IsPast {
		t.Error("ended event should carry IsPast=true")
	}
}

func TestGroupUpcoming_DefaultWindow(t *testing.T) {
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)
	seventh := dayEvent(2024, time.March, 7, "10:00", "11:00")
	eighth := dayEvent(2024, time.March, 8, "10:00", "11:00")

	buckets := GroupUpcoming([]model.CalendarEvent{seventh, eighth}, now, 0, false)
	if len(buckets) != 1 || buckets[0].Key != "2024-03-07" {
		t.Errorf("default 7-day window should include only Mar 7, got %v", buckets)
	}
}
