package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// ExpenseRepository defines the interface for expense persistence operations
// against the remote expenses table. Reads return errors distinguishable from
// empty results; write failures propagate to the caller.
type ExpenseRepository interface {
	// FindByFilter retrieves expenses matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindByID retrieves a single expense by ID scoped to its owner.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error)

	// Create inserts a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update updates an existing expense scoped to its owner.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense scoped to its owner.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryRepository defines read-only access to the categories table.
type CategoryRepository interface {
	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
