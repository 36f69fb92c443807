package dto

import (
	"time"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the session returned to the client.
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresAt    string       `json:"expires_at,omitempty"`
	User         UserResponse `json:"user"`
}

// UserResponse represents the identity section of a session response.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToSessionResponse converts a session entity to its response DTO.
func ToSessionResponse(session *entity.Session) SessionResponse {
	expiresAt := ""
	if !session.ExpiresAt.IsZero() {
		expiresAt = session.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    expiresAt,
		User: UserResponse{
			ID:    session.User.ID.String(),
			Email: session.User.Email,
		},
	}
}
