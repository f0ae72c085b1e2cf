package calendar

import (
	"time"

	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// Engine limits. Quota is enforced per owner at creation time.
const (
	MaxEventsPerOwner = 200
	EventNameMinLen   = 1
	EventNameMaxLen   = 200
	DescriptionMaxLen = 1000

	// GridCells is the fixed month-grid size: 6 full weeks.
	GridCells = 42

	DefaultUpcomingDays = 7
)

// CalendarDay is one cell of the month grid. Ephemeral: recomputed on every
// build, never persisted.
type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	EventCount     int
}

// BucketEvent is an event annotated with its derived past/future status.
type BucketEvent struct {
	Event  model.CalendarEvent
	IsPast bool
}

// DayBucket groups one day's events under its canonical "YYYY-MM-DD" key.
type DayBucket struct {
	Key    string
	Date   time.Time
	Events []BucketEvent
}

// --- UseCase inputs ---

type CreateEventInput struct {
	Date        datenorm.Input
	EventName   string
	StartTime   string
	EndTime     string
	Description string
}

// UpdateEventInput is a partial update: nil fields are left untouched.
type UpdateEventInput struct {
	ID          string
	Date        datenorm.Input
	EventName   *string
	StartTime   *string
	EndTime     *string
	Description *string
}

type ListByDayInput struct {
	Day datenorm.Input
}

type ListByMonthInput struct {
	Year  int
	Month time.Month
}

type MonthViewInput struct {
	Year     int
	Month    time.Month
	Selected datenorm.Input // nil means no selection
}

type UpcomingInput struct {
	Days     int // window size in days, DefaultUpcomingDays when <= 0
	HidePast bool
}

// --- UseCase outputs ---

type CreateEventOutput struct {
	Event model.CalendarEvent
}

type UpdateEventOutput struct {
	Event model.CalendarEvent
}

type ListEventsOutput struct {
	Events []model.CalendarEvent
}

type MonthViewOutput struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

type UpcomingOutput struct {
	Buckets []DayBucket
}
