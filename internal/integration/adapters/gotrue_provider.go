// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// gotrueProvider implements adapter.SessionProvider against the hosted
// provider's auth service. Tokens stay opaque here; issuance, refresh, and
// revocation are all remote calls.
type gotrueProvider struct {
	auth gotrue.Client
}

// NewGotrueProvider creates a session provider backed by the given auth client.
func NewGotrueProvider(auth gotrue.Client) adapter.SessionProvider {
	return &gotrueProvider{
		auth: auth,
	}
}

// SignInWithPassword exchanges credentials for a session.
func (p *gotrueProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("password sign-in rejected: %w", err)
	}
	return sessionFromTokenResponse(resp), nil
}

// ExchangeCode exchanges a short-lived authorization code and its PKCE
// verifier for a session.
func (p *gotrueProvider) ExchangeCode(ctx context.Context, code, verifier string) (*entity.Session, error) {
	resp, err := p.auth.Token(types.TokenRequest{
		GrantType:    "pkce",
		Code:         code,
		CodeVerifier: verifier,
	})
	if err != nil {
		return nil, fmt.Errorf("code exchange rejected: %w", err)
	}
	return sessionFromTokenResponse(resp), nil
}

// Refresh exchanges a refresh token for a fresh session.
func (p *gotrueProvider) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	resp, err := p.auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("session refresh rejected: %w", err)
	}
	return sessionFromTokenResponse(resp), nil
}

// GetSession resolves the session belonging to an access token. An absent or
// rejected token maps to the domain no-session error; a provider failure is
// returned as-is so each caller can apply its own fail-open or fail-closed
// default.
func (p *gotrueProvider) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, domainerror.ErrNoSession
	}

	user, err := p.auth.WithToken(accessToken).GetUser()
	if err != nil {
		if isTokenRejection(err) {
			return nil, domainerror.ErrNoSession
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return &entity.Session{
		AccessToken: accessToken,
		User: entity.User{
			ID:    user.ID,
			Email: user.Email,
		},
	}, nil
}

// SignOut revokes the session belonging to the access token.
func (p *gotrueProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := p.auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("remote sign-out failed: %w", err)
	}
	return nil
}

// isTokenRejection reports whether the auth service definitively rejected
// the token, as opposed to failing to answer. The client surfaces non-2xx
// responses as errors carrying the status code.
func isTokenRejection(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"status code 400", "status code 401", "status code 403"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sessionFromTokenResponse(resp *types.TokenResponse) *entity.Session {
	now := time.Now().UTC()
	return &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		IssuedAt:     now,
		ExpiresAt:    now.Add(time.Duration(resp.ExpiresIn) * time.Second),
		User: entity.User{
			ID:    resp.User.ID,
			Email: resp.User.Email,
		},
	}
}
