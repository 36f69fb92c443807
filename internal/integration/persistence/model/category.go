package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// CategoryRow mirrors the categories table.
type CategoryRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *CategoryRow) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
