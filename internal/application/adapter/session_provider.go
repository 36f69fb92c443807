// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// SessionProvider defines the interface to the external authentication
// provider. Sessions are created, refreshed, and revoked remotely; this
// application never constructs or parses tokens beyond the checks the
// provider client performs.
type SessionProvider interface {
	// SignInWithPassword exchanges email/password credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// ExchangeCode exchanges a short-lived authorization code and its PKCE
	// verifier for a session.
	ExchangeCode(ctx context.Context, code, verifier string) (*entity.Session, error)

	// Refresh exchanges a refresh token for a fresh session.
	Refresh(ctx context.Context, refreshToken string) (*entity.Session, error)

	// GetSession resolves the session belonging to an access token, or
	// domainerror.ErrNoSession when the token is absent or rejected.
	GetSession(ctx context.Context, accessToken string) (*entity.Session, error)

	// SignOut revokes the session belonging to the access token.
	SignOut(ctx context.Context, accessToken string) error
}
