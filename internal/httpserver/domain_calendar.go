package httpserver

import (
	"context"

	calendarHTTP "study-platform-calendar/internal/calendar/delivery/http"
	calendarRepo "study-platform-calendar/internal/calendar/repository/firestore"
	calendarUC "study-platform-calendar/internal/calendar/usecase"
	"study-platform-calendar/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupCalendarDomain initializes the calendar domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.firestore, srv.l, ...)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := calendarRepo.New(srv.firestore, srv.l, srv.eventQuota)

	// 2. UseCase
	uc := calendarUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := calendarHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/calendar
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
