package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"study-platform-calendar/pkg/scope"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) DPanic(ctx context.Context, args ...interface{})                {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
}
func (noopLogger) Panic(ctx context.Context, args ...interface{})                 {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...interface{}) {}

func newTestMiddleware(t *testing.T) (Middleware, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sm := scope.NewManager("test-secret", time.Hour)
	return New(noopLogger{}, sm, 60), sm
}

func performRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	r := gin.New()
	r.GET("/probe", mw.Auth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "Bearer ", "Basic abc", "Bearer not-a-token"} {
		if w := performRequest(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want %d", header, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestAuthSetsScope(t *testing.T) {
	mw, sm := newTestMiddleware(t)

	token, err := sm.Generate("owner-1", "alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var gotUserID string
	r := gin.New()
	r.GET("/probe", mw.Auth(), func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			t.Fatal("scope missing from context")
		}
		gotUserID = sc.UserID
		c.Status(http.StatusOK)
	})

	w := performRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUserID != "owner-1" {
		t.Errorf("scope user = %q, want owner-1", gotUserID)
	}
}

func TestWriteLimitThrottlesPerOwner(t *testing.T) {
	rl := newOwnerRateLimiter(60)

	allowed := 0
	for i := 0; i < 20; i++ {
		if rl.allow("owner-1") {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Fatalf("allowed = %d, want some but not all of 20 immediate writes", allowed)
	}

	// A different owner has an independent limiter.
	if !rl.allow("owner-2") {
		t.Error("fresh owner should not be throttled")
	}
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	mw, _ := newTestMiddleware(t)

	r := gin.New()
	r.GET("/probe", mw.RequestID(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(r, "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("request id = %q, want fixed-id", got)
	}
}
