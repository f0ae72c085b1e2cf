package middleware

import (
	"study-platform-calendar/pkg/log"
	"study-platform-calendar/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	writeLimiter *ownerRateLimiter
}

func New(l log.Logger, scopeManager scope.Manager, writesPerMin int) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		writeLimiter: newOwnerRateLimiter(writesPerMin),
	}
}
