package calendar

import (
	"time"

	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// BuildGrid produces the 6x7 month grid: the previous month's trailing days
// up to the first weekday (Sunday-based), every day of the target month,
// then the next month's leading days until exactly GridCells cells.
// selected == nil means no cell is ever marked selected.
func BuildGrid(year int, month time.Month, events []model.CalendarEvent, today time.Time, selected *time.Time) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday()) // Sunday = 0

	days := make([]CalendarDay, 0, GridCells)

	for i := leading; i > 0; i-- {
		days = append(days, newCell(first.AddDate(0, 0, -i), false, events, today, selected))
	}
	for d := 0; d < daysInMonth; d++ {
		days = append(days, newCell(first.AddDate(0, 0, d), true, events, today, selected))
	}
	for d := 1; len(days) < GridCells; d++ {
		days = append(days, newCell(first.AddDate(0, 1, d-1), false, events, today, selected))
	}

	return days
}

func newCell(date time.Time, currentMonth bool, events []model.CalendarEvent, today time.Time, selected *time.Time) CalendarDay {
	return CalendarDay{
		Date:           date,
		IsCurrentMonth: currentMonth,
		IsToday:        datenorm.SameDay(date, today),
		IsSelected:     selected != nil && datenorm.SameDay(date, *selected),
		EventCount:     countEventsOn(date, events),
	}
}

func countEventsOn(date time.Time, events []model.CalendarEvent) int {
	n := 0
	for _, e := range events {
		if datenorm.SameDay(e.Date, date) {
			n++
		}
	}
	return n
}
