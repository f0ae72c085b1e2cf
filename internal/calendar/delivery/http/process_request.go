package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("event id is required")

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update event request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processDayReq binds and validates the by-day query parameters.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processMonthReq binds and validates the by-month query parameters.
func (h *handler) processMonthReq(c *gin.Context) (monthReq, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processMonthViewReq binds and validates the month-view query parameters.
func (h *handler) processMonthViewReq(c *gin.Context) (monthViewReq, error) {
	var req monthViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpcomingReq binds and validates the upcoming query parameters.
func (h *handler) processUpcomingReq(c *gin.Context) (upcomingReq, error) {
	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
