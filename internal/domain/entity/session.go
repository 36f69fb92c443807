// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the identity carried by a provider session.
type User struct {
	ID    uuid.UUID
	Email string
}

// Session represents a provider-issued, time-bounded, refreshable proof of
// authentication. The token fields are opaque to this application beyond the
// claims the provider documents; the provider remains the source of truth.
type Session struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	User         User
}

// IsExpired reports whether the session has passed its expiry at the given
// instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
