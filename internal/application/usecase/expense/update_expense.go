package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense. Nil
// pointer fields are left unchanged.
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ExpenseID   uuid.UUID
	Date        *time.Time
	CategoryID  *uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Quantity    *decimal.Decimal
	Unit        *string
	Notes       *string
}

// UpdateExpenseUseCase handles updating an existing expense.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute applies the partial update after re-validating the merged result.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.Expense, error) {
	existing, err := findOwnedExpense(ctx, uc.expenseRepo, input.UserID, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		existing.Date = *input.Date
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Amount != nil {
		existing.Amount = *input.Amount
	}
	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				err,
			)
		}
		existing.CategoryID = input.CategoryID
	}
	if input.Quantity != nil {
		existing.Quantity = input.Quantity
	}
	if input.Unit != nil {
		existing.Unit = *input.Unit
	}
	if input.Notes != nil {
		existing.Notes = *input.Notes
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := validateExpenseInput(existing.Date, existing.Description, existing.Amount); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Update(ctx, existing); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseWriteFailed,
			"failed to update expense",
			err,
		)
	}
	return existing, nil
}
