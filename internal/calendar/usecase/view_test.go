package usecase

import (
	"context"
	"testing"
	"time"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/pkg/datenorm"
)

func TestMonthView_GridSizeAndCounts(t *testing.T) {
	repo := newMockRepo()
	day := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)
	seedEvent(repo, "e1", "owner-1", day, "09:00", "10:00")
	seedEvent(repo, "e2", "owner-1", day, "11:00", "12:00")
	uc := New(&mockLogger{}, repo)

	out, err := uc.MonthView(context.Background(), testScope, calendar.MonthViewInput{
		Year:  2024,
		Month: time.February,
	})
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}

	if len(out.Days) != calendar.GridCells {
		t.Fatalf("%d cells, want %d", len(out.Days), calendar.GridCells)
	}
	for _, d := range out.Days {
		if d.Date.Month() == time.February && d.Date.Day() == 29 {
			if !d.IsCurrentMonth {
				t.Error("Feb 29 must be a current-month cell")
			}
			if d.EventCount != 2 {
				t.Errorf("Feb 29 count = %d, want 2", d.EventCount)
			}
		}
	}
}

func TestMonthView_SelectedDay(t *testing.T) {
	uc := New(&mockLogger{}, newMockRepo())

	out, err := uc.MonthView(context.Background(), testScope, calendar.MonthViewInput{
		Year:     2024,
		Month:    time.March,
		Selected: datenorm.ISOString("2024-03-12"),
	})
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}

	selected := 0
	for _, d := range out.Days {
		if d.IsSelected {
			selected++
			if d.Date.Day() != 12 {
				t.Errorf("selected cell is %v", d.Date)
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d selected cells, want 1", selected)
	}
}

func TestUpcoming_WindowFromNow(t *testing.T) {
	repo := newMockRepo()
	today := datenorm.StartOfDay(time.Now())
	seedEvent(repo, "in", "owner-1", today.AddDate(0, 0, 2), "09:00", "10:00")
	seedEvent(repo, "out", "owner-1", today.AddDate(0, 0, 9), "09:00", "10:00")
	uc := New(&mockLogger{}, repo)

	got, err := uc.Upcoming(context.Background(), testScope, calendar.UpcomingInput{Days: 7})
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got.Buckets) != 1 {
		t.Fatalf("%d buckets, want 1", len(got.Buckets))
	}
	if got.Buckets[0].Key != datenorm.DayKey(today.AddDate(0, 0, 2)) {
		t.Errorf("bucket key = %s", got.Buckets[0].Key)
	}
}
