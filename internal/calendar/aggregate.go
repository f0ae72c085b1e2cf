package calendar

import (
	"sort"
	"time"

	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// SortForDay orders a single day's events ascending by start time as minutes
// since midnight. The sort is stable: equal start times keep their input
// order. The input slice is not modified.
func SortForDay(events []model.CalendarEvent) []model.CalendarEvent {
	out := make([]model.CalendarEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartMinutes() < out[j].StartMinutes()
	})
	return out
}

// SortForList is the list-view ordering; same key as SortForDay.
func SortForList(events []model.CalendarEvent) []model.CalendarEvent {
	return SortForDay(events)
}

// SortByDateThenTime is the canonical composite ordering used wherever
// events are listed without day grouping: calendar date ascending, then
// start-time minutes ascending. Stable and total.
func SortByDateThenTime(events []model.CalendarEvent) []model.CalendarEvent {
	out := make([]model.CalendarEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		di := datenorm.StartOfDay(out[i].Date)
		dj := datenorm.StartOfDay(out[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].StartMinutes() < out[j].StartMinutes()
	})
	return out
}

// IsPast reports whether the event's day-plus-end-time instant is strictly
// before now.
func IsPast(e model.CalendarEvent, now time.Time) bool {
	return e.EndInstant().Before(now)
}

// GroupUpcoming buckets events falling in [start of now's day, +days) by
// canonical day key. Buckets are ordered by ascending date and internally
// sorted per SortForDay. With hidePast set, past events are removed and
// buckets left empty are dropped.
func GroupUpcoming(events []model.CalendarEvent, now time.Time, days int, hidePast bool) []DayBucket {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	windowStart := datenorm.StartOfDay(now)
	windowEnd := windowStart.AddDate(0, 0, days)

	byKey := make(map[string][]model.CalendarEvent)
	for _, e := range events {
		day := datenorm.StartOfDay(e.Date)
		if day.Before(windowStart) || !day.Before(windowEnd) {
			continue
		}
		key := datenorm.DayKey(day)
		byKey[key] = append(byKey[key], e)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys) // "YYYY-MM-DD" sorts chronologically

	buckets := make([]DayBucket, 0, len(keys))
	for _, key := range keys {
		dayEvents := SortForDay(byKey[key])

		bucket := DayBucket{
			Key:  key,
			Date: datenorm.StartOfDay(dayEvents[0].Date),
		}
		for _, e := range dayEvents {
			past := IsPast(e, now)
			if hidePast && past {
				continue
			}
			bucket.Events = append(bucket.Events, BucketEvent{Event: e, IsPast: past})
		}
		if len(bucket.Events) == 0 {
			continue
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}
