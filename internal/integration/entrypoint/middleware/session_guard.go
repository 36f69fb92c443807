// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// SessionCheckHeader is the debug marker set on authenticated pass-through.
const SessionCheckHeader = "X-Session-Check"

// SessionGuard gates the page surface per request. It applies the routing
// policy to the declared path set, resolving the session from the opaque
// session cookie with a single provider attempt. A resolution failure passes
// the request through unchanged: the guard is deliberately fail-open so a
// transient provider error never takes the whole app down, unlike the
// fail-closed default of the in-app session state.
type SessionGuard struct {
	provider   adapter.SessionProvider
	policy     auth.RoutingPolicy
	cookieName string
}

// NewSessionGuard creates a new session guard instance.
func NewSessionGuard(provider adapter.SessionProvider, policy auth.RoutingPolicy, cookieName string) *SessionGuard {
	return &SessionGuard{
		provider:   provider,
		policy:     policy,
		cookieName: cookieName,
	}
}

// Gate returns a Gin middleware handler that enforces the routing policy.
// Redirects use 303 See Other, which replaces the current location without
// growing browser history. An auth-check failure never produces a 5xx.
func (g *SessionGuard) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !g.policy.IsGated(path) {
			c.Next()
			return
		}

		authenticated, resolved := g.resolveSession(c)
		if !resolved {
			c.Next()
			return
		}

		decision := g.policy.Decide(path, authenticated)
		if decision.Redirect {
			c.Redirect(http.StatusSeeOther, decision.Target)
			c.Abort()
			return
		}

		if authenticated {
			c.Header(SessionCheckHeader, "ok")
		}
		c.Next()
	}
}

// resolveSession makes exactly one resolution attempt. The second return
// value is false when the attempt itself failed, in which case the request
// passes through unchanged.
func (g *SessionGuard) resolveSession(c *gin.Context) (authenticated, resolved bool) {
	token, err := c.Cookie(g.cookieName)
	if err != nil || token == "" {
		return false, true
	}

	_, err = g.provider.GetSession(c.Request.Context(), token)
	if err == nil {
		return true, true
	}
	if errors.Is(err, domainerror.ErrNoSession) {
		return false, true
	}

	slog.Warn("session resolution failed, passing request through",
		"path", c.Request.URL.Path,
		"error", err,
	)
	return false, false
}
