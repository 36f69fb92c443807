package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the identity claims carried by a provider-issued
// access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService validates provider-issued access tokens locally so API
// requests resolve identity without a provider round trip. Session lifecycle
// (issuance, refresh, revocation) stays with the SessionProvider.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
