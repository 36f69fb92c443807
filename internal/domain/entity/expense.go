package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedName is displayed when an expense's category reference does
// not resolve to an existing category.
const UncategorizedName = "Uncategorized"

// Expense represents a single expense record owned by a user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	Description string
	Amount      decimal.Decimal // Non-negative monetary value
	Quantity    *decimal.Decimal
	Unit        string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	date time.Time,
	categoryID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	quantity *decimal.Decimal,
	unit string,
	notes string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Quantity:    quantity,
		Unit:        unit,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory represents an expense with its resolved category name.
type ExpenseWithCategory struct {
	Expense      *Expense
	CategoryName string
}
