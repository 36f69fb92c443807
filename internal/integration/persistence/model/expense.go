// Package model defines the wire shapes of the remote tables. Column names
// mirror the provider-owned schema; conversion to and from domain entities
// happens here so the rest of the application never sees raw rows.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// ExpenseRow mirrors the expenses table.
type ExpenseRow struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	Date        time.Time        `json:"date"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *ExpenseRow) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.Date,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Amount:      r.Amount,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ExpenseFromEntity converts a domain entity to its row shape.
func ExpenseFromEntity(e *entity.Expense) *ExpenseRow {
	return &ExpenseRow{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Amount:      e.Amount,
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
