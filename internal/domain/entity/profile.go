package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user profile row. It is created implicitly by the
// provider when a user first signs in; this application only reads it and
// applies edits from the profile view.
type Profile struct {
	ID          uuid.UUID // Equals the session user ID
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
