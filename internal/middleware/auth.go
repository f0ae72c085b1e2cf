package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"study-platform-calendar/internal/model"
	"study-platform-calendar/pkg/response"
)

const scopeKey = "scope"

// Auth verifies the bearer token and stores the resolved scope on the
// request context for handlers to pick up.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth.Verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   payload.UserID,
			Username: payload.Username,
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope set by Auth for the current request.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
