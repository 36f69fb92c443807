package dto

import (
	"time"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the editable profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// ProfileResponse represents a user profile.
type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToProfileResponse converts a profile entity to its DTO.
func ToProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID.String(),
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Role:        profile.Role,
		CreatedAt:   profile.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
