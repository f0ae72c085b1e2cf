package http

import (
	"github.com/gin-gonic/gin"

	"study-platform-calendar/internal/calendar"
	"study-platform-calendar/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	ListByDay(c *gin.Context)
	ListByMonth(c *gin.Context)
	MonthView(c *gin.Context)
	Upcoming(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
