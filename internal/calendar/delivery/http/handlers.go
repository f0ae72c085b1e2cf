package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"study-platform-calendar/internal/middleware"
	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// Create godoc
// @Summary     Create a calendar event
// @Description Creates a new event on the given day for the authenticated owner.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Conflict - event quota reached"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List all events
// @Description Returns every event owned by the caller, ordered by date then start time.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListByDay godoc
// @Summary     List events for one day
// @Description Returns the caller's events on the given day, ordered by start time.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       date query string true "Day (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events/day [GET]
func (h *handler) ListByDay(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.ListByDay(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByDay: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListByMonth godoc
// @Summary     List events for one month
// @Description Returns the caller's events within the given month, ordered by date then start time.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events/month [GET]
func (h *handler) ListByMonth(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.ListByMonth(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByMonth: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// MonthView godoc
// @Summary     Month grid view
// @Description Returns the fixed 42-cell month grid with per-day event counts and flags.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       year     query int    true  "Year"
// @Param       month    query int    true  "Month (1-12)"
// @Param       selected query string false "Selected day (YYYY-MM-DD)"
// @Success     200 {object} monthViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/month-view [GET]
func (h *handler) MonthView(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processMonthViewReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.MonthView(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MonthView: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newMonthViewResp(output))
}

// Upcoming godoc
// @Summary     Upcoming events grouped by day
// @Description Returns the caller's events within the upcoming window, grouped by day.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       days      query int  false "Window size in days (default: 7)"
// @Param       hide_past query bool false "Drop events that already ended"
// @Success     200 {object} upcomingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.Upcoming(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Update godoc
// @Summary     Update a calendar event
// @Description Partially updates an existing event. Omitted fields are left untouched.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a calendar event
// @Description Permanently removes an event by ID.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
