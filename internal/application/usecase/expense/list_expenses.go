// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithCategory
}

// ListExpensesUseCase handles listing expenses with resolved category names.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists the user's expenses, newest first. A category reference that
// no longer resolves renders as "Uncategorized" rather than failing the list.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	result := make([]*entity.ExpenseWithCategory, len(expenses))
	for i, e := range expenses {
		name := entity.UncategorizedName
		if e.CategoryID != nil {
			if resolved, ok := categoryNames[*e.CategoryID]; ok {
				name = resolved
			}
		}
		result[i] = &entity.ExpenseWithCategory{Expense: e, CategoryName: name}
	}

	return &ListExpensesOutput{Expenses: result}, nil
}

// findOwnedExpense resolves an expense by ID scoped to the caller, mapping a
// missing row to the domain not-found error.
func findOwnedExpense(ctx context.Context, repo adapter.ExpenseRepository, userID, id uuid.UUID) (*entity.Expense, error) {
	found, err := repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}
	return found, nil
}
