// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/internal/application/usecase/auth"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// guardProvider implements adapter.SessionProvider for guard tests.
type guardProvider struct {
	session *entity.Session
	err     error
}

func (p *guardProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	return p.session, p.err
}

func (p *guardProvider) ExchangeCode(ctx context.Context, code, verifier string) (*entity.Session, error) {
	return p.session, p.err
}

func (p *guardProvider) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	return p.session, p.err
}

func (p *guardProvider) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

func (p *guardProvider) SignOut(ctx context.Context, accessToken string) error {
	return p.err
}

const guardCookie = "sb-access-token"

func guardRouter(provider *guardProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	guard := NewSessionGuard(provider, auth.RoutingPolicy{
		ProtectedPrefix: "/dashboard",
		AuthPath:        "/auth",
	}, guardCookie)

	engine := gin.New()
	engine.Use(guard.Gate())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	engine.GET("/dashboard", ok)
	engine.GET("/dashboard/reports", ok)
	engine.GET("/auth", ok)
	engine.GET("/about", ok)
	return engine
}

func get(engine *gin.Engine, path string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: guardCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSessionGuard_Gate(t *testing.T) {
	signedIn := &guardProvider{session: &entity.Session{AccessToken: "tok"}}
	signedOut := &guardProvider{err: domainerror.ErrNoSession}

	t.Run("protected path without cookie redirects to auth", func(t *testing.T) {
		rec := get(guardRouter(signedOut), "/dashboard", "")
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/auth" {
			t.Errorf("expected redirect to /auth, got %s", loc)
		}
	})

	t.Run("protected subpath with rejected token redirects to auth", func(t *testing.T) {
		rec := get(guardRouter(signedOut), "/dashboard/reports", "stale")
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/auth" {
			t.Errorf("expected redirect to /auth, got %s", loc)
		}
	})

	t.Run("protected path with valid session passes through", func(t *testing.T) {
		rec := get(guardRouter(signedIn), "/dashboard", "tok")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Header().Get(SessionCheckHeader) != "ok" {
			t.Error("expected the session check marker on authenticated pass-through")
		}
	})

	t.Run("auth path with valid session redirects to dashboard", func(t *testing.T) {
		rec := get(guardRouter(signedIn), "/auth", "tok")
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/dashboard" {
			t.Errorf("expected redirect to /dashboard, got %s", loc)
		}
	})

	t.Run("auth path without session passes through", func(t *testing.T) {
		rec := get(guardRouter(signedOut), "/auth", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("ungated path is never touched", func(t *testing.T) {
		rec := get(guardRouter(signedOut), "/about", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("resolution failure fails open", func(t *testing.T) {
		flaky := &guardProvider{err: errors.New("provider timeout")}
		rec := get(guardRouter(flaky), "/dashboard", "tok")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected fail-open 200, got %d", rec.Code)
		}
		if rec.Header().Get(SessionCheckHeader) != "" {
			t.Error("expected no session check marker on fail-open pass-through")
		}
	})
}
