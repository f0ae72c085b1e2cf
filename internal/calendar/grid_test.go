package calendar

import (
	"testing"
	"time"

	"study-platform-calendar/internal/model"
)

func dayEvent(y int, m time.Month, d int, start, end string) model.CalendarEvent {
	return model.CalendarEvent{
		OwnerID:   "owner-1",
		Date:      time.Date(y, m, d, 0, 0, 0, 0, time.Local),
		EventName: "event",
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildGrid_Always42Cells(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	for year := 2019; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			days := BuildGrid(year, month, nil, today, nil)
			if len(days) != GridCells {
				t.Errorf("%d-%02d: %d cells, want %d", year, month, len(days), GridCells)
			}
		}
	}
}

func TestBuildGrid_CurrentMonthDayCount(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.March, 31},
	}
	for _, tc := range cases {
		days := BuildGrid(tc.year, tc.month, nil, today, nil)
		got := 0
		for _, d := range days {
			if d.IsCurrentMonth {
				got++
			}
		}
		if got != tc.want {
			t.Errorf("%d-%02d: %d current-month cells, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestBuildGrid_LeapFebruary2024(t *testing.T) {
	today := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.Local)
	days := BuildGrid(2024, time.February, nil, today, nil)

	if len(days) != GridCells {
		t.Fatalf("%d cells, want %d", len(days), GridCells)
	}

	found := false
	for _, d := range days {
		if d.Date.Month() == time.February && d.Date.Day() == 29 {
			found = true
			if !d.IsCurrentMonth {
				t.Error("Feb 29 must be IsCurrentMonth")
			}
		}
	}
	if !found {
		t.Error("Feb 29 2024 missing from grid")
	}
}

func TestBuildGrid_CellsAreConsecutive(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	days := BuildGrid(2024, time.March, nil, today, nil)

	// March 1 2024 is a Friday: five leading cells from February.
	if days[0].Date.Month() != time.February || days[0].Date.Day() != 25 {
		t.Errorf("first cell = %v, want Feb 25", days[0].Date)
	}
	for i := 1; i < len(days); i++ {
		want := days[i-1].Date.AddDate(0, 0, 1)
		if !days[i].Date.Equal(want) {
			t.Fatalf("cell %d = %v, want %v", i, days[i].Date, want)
		}
	}
}

func TestBuildGrid_TodayFlag(t *testing.T) {
	today := time.Date(2024, time.March, 5, 16, 45, 0, 0, time.Local)

	days := BuildGrid(2024, time.March, nil, today, nil)
	count := 0
	for _, d := range days {
		if d.IsToday {
			count++
			if d.Date.Day() != 5 || d.Date.Month() != time.March {
				t.Errorf("IsToday on wrong cell: %v", d.Date)
			}
		}
	}
	if count != 1 {
		t.Errorf("IsToday true on %d cells, want 1", count)
	}

	// Today outside the displayed window: no cell flagged.
	days = BuildGrid(2024, time.August, nil, today, nil)
	for _, d := range days {
		if d.IsToday {
			t.Errorf("IsToday set for %v, but today is far outside the window", d.Date)
		}
	}
}

func TestBuildGrid_SelectedFlag(t *testing.T) {
	today := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)

	// Nil selection: never selected.
	for _, d := range BuildGrid(2024, time.March, nil, today, nil) {
		if d.IsSelected {
			t.Fatalf("IsSelected with nil selection on %v", d.Date)
		}
	}

	selected := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.Local)
	count := 0
	for _, d := range BuildGrid(2024, time.March, nil, today, &selected) {
		if d.IsSelected {
			count++
			if d.Date.Day() != 12 {
				t.Errorf("IsSelected on wrong cell: %v", d.Date)
			}
		}
	}
	if count != 1 {
		t.Errorf("IsSelected true on %d cells, want 1", count)
	}
}

func TestBuildGrid_EventCounts(t *testing.T) {
	today := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	events := []model.CalendarEvent{
		dayEvent(2024, time.March, 5, "09:00", "10:00"),
		dayEvent(2024, time.March, 5, "11:00", "12:00"),
		dayEvent(2024, time.February, 28, "08:00", "09:00"), // leading cell
	}

	days := BuildGrid(2024, time.March, events, today, nil)
	for _, d := range days {
		switch {
		case d.Date.Month() == time.March && d.Date.Day() == 5:
			if d.EventCount != 2 {
				t.Errorf("Mar 5 count = %d, want 2", d.EventCount)
			}
		case d.Date.Month() == time.February && d.Date.Day() == 28:
			if d.EventCount != 1 {
				t.Errorf("Feb 28 leading cell count = %d, want 1", d.EventCount)
			}
		default:
			if d.EventCount != 0 {
				t.Errorf("%v count = %d, want 0", d.Date, d.EventCount)
			}
		}
	}
}
