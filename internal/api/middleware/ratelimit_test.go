package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func runLimit(t *testing.T, limiter Limiter) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := LoginRateLimit(limiter, zerolog.Nop())(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestLoginRateLimit_Allowed(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	rec := runLimit(t, limiter)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 {
		t.Fatalf("limiter not consulted")
	}
}

func TestLoginRateLimit_Blocked(t *testing.T) {
	rec := runLimit(t, &stubLimiter{allow: false})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestLoginRateLimit_BackendFailureFailsOpen(t *testing.T) {
	rec := runLimit(t, &stubLimiter{err: errors.New("redis down")})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected fail-open 200, got %d", rec.Code)
	}
}
