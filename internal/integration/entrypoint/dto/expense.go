package dto

import (
	"time"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the create-expense payload.
type CreateExpenseRequest struct {
	Date        string   `json:"date" binding:"required"`
	CategoryID  *string  `json:"category_id"`
	Description string   `json:"description" binding:"required"`
	Amount      float64  `json:"amount" binding:"min=0"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Notes       string   `json:"notes"`
}

// UpdateExpenseRequest represents the partial update payload. Absent fields
// are left unchanged.
type UpdateExpenseRequest struct {
	Date        *string  `json:"date"`
	CategoryID  *string  `json:"category_id"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Notes       *string  `json:"notes"`
}

// ExpenseResponse represents a single expense in responses.
type ExpenseResponse struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	CategoryID  *string  `json:"category_id,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ExpenseListResponse represents the list-expenses response.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// ToExpenseResponse converts an expense with category to its response DTO.
func ToExpenseResponse(e *entity.ExpenseWithCategory) ExpenseResponse {
	return toExpenseResponse(e.Expense, e.CategoryName)
}

// ToCreatedExpenseResponse converts a bare expense, rendering the category
// reference without resolving it.
func ToCreatedExpenseResponse(e *entity.Expense) ExpenseResponse {
	return toExpenseResponse(e, "")
}

func toExpenseResponse(e *entity.Expense, categoryName string) ExpenseResponse {
	amount, _ := e.Amount.Float64()

	var categoryID *string
	if e.CategoryID != nil {
		s := e.CategoryID.String()
		categoryID = &s
	}

	var quantity *float64
	if e.Quantity != nil {
		q, _ := e.Quantity.Float64()
		quantity = &q
	}

	return ExpenseResponse{
		ID:          e.ID.String(),
		Date:        e.Date.UTC().Format(time.RFC3339),
		CategoryID:  categoryID,
		Category:    categoryName,
		Description: e.Description,
		Amount:      amount,
		Quantity:    quantity,
		Unit:        e.Unit,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
