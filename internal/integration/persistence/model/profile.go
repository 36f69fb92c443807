package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// ProfileRow mirrors the profiles table.
type ProfileRow struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *ProfileRow) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:          r.ID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Role:        r.Role,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ProfileFromEntity converts a domain entity to its row shape.
func ProfileFromEntity(p *entity.Profile) *ProfileRow {
	return &ProfileRow{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
