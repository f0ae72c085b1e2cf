package http

import (
	"time"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/datenorm"
)

// --- Request DTOs ---

type createReq struct {
	Date        string `json:"date"        binding:"required"`
	EventName   string `json:"eventName"   binding:"required,min=1,max=200"`
	StartTime   string `json:"startTime"   binding:"required"`
	EndTime     string `json:"endTime"     binding:"required"`
	Description string `json:"description" binding:"max=1000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Date:        datenorm.ISOString(r.Date),
		EventName:   r.EventName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Date        *string `json:"date"        binding:"omitempty"`
	EventName   *string `json:"eventName"   binding:"omitempty,min=1,max=200"`
	StartTime   *string `json:"startTime"   binding:"omitempty"`
	EndTime     *string `json:"endTime"     binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() calendar.UpdateEventInput {
	input := calendar.UpdateEventInput{
		ID:          r.ID,
		EventName:   r.EventName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
	if r.Date != nil {
		input.Date = datenorm.ISOString(*r.Date)
	}
	return input
}

// ---

type dayReq struct {
	Date string `form:"date" binding:"required"`
}

func (r dayReq) validate() error { return nil }

func (r dayReq) toInput() calendar.ListByDayInput {
	return calendar.ListByDayInput{Day: datenorm.ISOString(r.Date)}
}

// ---

type monthReq struct {
	Year  int `form:"year"  binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

func (r monthReq) validate() error { return nil }

func (r monthReq) toInput() calendar.ListByMonthInput {
	return calendar.ListByMonthInput{
		Year:  r.Year,
		Month: time.Month(r.Month),
	}
}

// ---

type monthViewReq struct {
	Year     int    `form:"year"  binding:"required"`
	Month    int    `form:"month" binding:"required,min=1,max=12"`
	Selected string `form:"selected"`
}

func (r monthViewReq) validate() error { return nil }

func (r monthViewReq) toInput() calendar.MonthViewInput {
	input := calendar.MonthViewInput{
		Year:  r.Year,
		Month: time.Month(r.Month),
	}
	if r.Selected != "" {
		input.Selected = datenorm.ISOString(r.Selected)
	}
	return input
}

// ---

type upcomingReq struct {
	Days     int  `form:"days"      binding:"omitempty,min=1,max=366"`
	HidePast bool `form:"hide_past"`
}

func (r upcomingReq) validate() error { return nil }

func (r upcomingReq) toInput() calendar.UpcomingInput {
	return calendar.UpcomingInput{
		Days:     r.Days,
		HidePast: r.HidePast,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	EventName   string    `json:"eventName"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	return eventResp{
		ID:          ev.ID,
		Date:        ev.Date.Format(datenorm.DayKeyFormat),
		EventName:   ev.EventName,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Description: ev.Description,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}

func newEventResps(events []model.CalendarEvent) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return out
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out calendar.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out calendar.UpdateEventOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out calendar.ListEventsOutput) listResp {
	return listResp{
		Events: newEventResps(out.Events),
		Total:  len(out.Events),
	}
}

type dayCellResp struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsSelected     bool   `json:"isSelected"`
	EventCount     int    `json:"eventCount"`
}

type monthViewResp struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []dayCellResp `json:"days"`
}

func (h *handler) newMonthViewResp(out calendar.MonthViewOutput) monthViewResp {
	days := make([]dayCellResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayCellResp{
			Date:           d.Date.Format(datenorm.DayKeyFormat),
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelected:     d.IsSelected,
			EventCount:     d.EventCount,
		}
	}
	return monthViewResp{
		Year:  out.Year,
		Month: int(out.Month),
		Days:  days,
	}
}

type bucketEventResp struct {
	eventResp
	IsPast bool `json:"isPast"`
}

type bucketResp struct {
	Date   string            `json:"date"`
	Events []bucketEventResp `json:"events"`
}

type upcomingResp struct {
	Buckets []bucketResp `json:"buckets"`
}

func (h *handler) newUpcomingResp(out calendar.UpcomingOutput) upcomingResp {
	buckets := make([]bucketResp, len(out.Buckets))
	for i, b := range out.Buckets {
		events := make([]bucketEventResp, len(b.Events))
		for j, be := range b.Events {
			events[j] = bucketEventResp{
				eventResp: newEventResp(be.Event),
				IsPast:    be.IsPast,
			}
		}
		buckets[i] = bucketResp{
			Date:   b.Key,
			Events: events,
		}
	}
	return upcomingResp{Buckets: buckets}
}
