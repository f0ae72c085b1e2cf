package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, calendar.ErrQuotaExceeded):
		response.Error(c, http.StatusConflict, err)
	case errors.Is(err, calendar.ErrEventNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, calendar.ErrEventNameLength),
		errors.Is(err, calendar.ErrDescriptionLength),
		errors.Is(err, calendar.ErrTimeOrder),
		errors.Is(err, calendar.ErrInvalidClock),
		errors.Is(err, calendar.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, err)
	default:
		response.InternalError(c)
	}
}
