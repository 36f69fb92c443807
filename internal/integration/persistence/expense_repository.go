// Package persistence implements repository interfaces against the hosted
// provider's REST data API. Every read is a column-filtered, optionally
// date-ranged, single-table select with server-side ordering; row-level
// security on the provider restricts visibility to the authenticated user,
// with user_id filters applied here as well.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	client *supabase.Client
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(client *supabase.Client) adapter.ExpenseRepository {
	return &expenseRepository{
		client: client,
	}
}

// FindByFilter retrieves expenses matching the filter, newest first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.client.From("expenses").
		Select("*", "", false).
		Eq("user_id", filter.UserID.String())

	if filter.StartDate != nil {
		query = query.Gte("date", filter.StartDate.Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		query = query.Lte("date", filter.EndDate.Format(time.RFC3339))
	}
	if filter.CategoryID != nil {
		query = query.Eq("category_id", filter.CategoryID.String())
	}

	data, _, err := query.Order("date.desc", nil).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var rows []model.ExpenseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse expenses: %w", err)
	}

	expenses := make([]*entity.Expense, len(rows))
	for i := range rows {
		expenses[i] = rows[i].ToEntity()
	}
	return expenses, nil
}

// FindByID retrieves a single expense scoped to its owner.
func (r *expenseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	data, _, err := r.client.From("expenses").
		Select("*", "", false).
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	var rows []model.ExpenseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse expense: %w", err)
	}
	if len(rows) == 0 {
		return nil, domainerror.ErrExpenseNotFound
	}
	return rows[0].ToEntity(), nil
}

// Create inserts a new expense.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	row := model.ExpenseFromEntity(expense)
	data, _, err := r.client.From("expenses").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	var created []model.ExpenseRow
	if err := json.Unmarshal(data, &created); err != nil {
		return fmt.Errorf("failed to parse created expense: %w", err)
	}
	if len(created) > 0 {
		expense.ID = created[0].ID
		expense.CreatedAt = created[0].CreatedAt
		expense.UpdatedAt = created[0].UpdatedAt
	}
	return nil
}

// Update updates an existing expense scoped to its owner.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	row := model.ExpenseFromEntity(expense)
	_, _, err := r.client.From("expenses").
		Update(row, "", "").
		Eq("id", expense.ID.String()).
		Eq("user_id", expense.UserID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// Delete removes an expense scoped to its owner.
func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, _, err := r.client.From("expenses").
		Delete("", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
