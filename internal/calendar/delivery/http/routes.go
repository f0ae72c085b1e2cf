package http

import (
	"github.com/gin-gonic/gin"

	"study-platform-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware; writes are additionally
// throttled per owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.Auth(), mw.WriteLimit(), h.Create)
		events.GET("", mw.Auth(), h.List)
		events.GET("/day", mw.Auth(), h.ListByDay)
		events.GET("/month", mw.Auth(), h.ListByMonth)
		events.PUT("/:id", mw.Auth(), mw.WriteLimit(), h.Update)
		events.DELETE("/:id", mw.Auth(), mw.WriteLimit(), h.Delete)
	}

	rg.GET("/month-view", mw.Auth(), h.MonthView)
	rg.GET("/upcoming", mw.Auth(), h.Upcoming)
}
