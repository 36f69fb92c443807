package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Date        time.Time
	CategoryID  *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Quantity    *decimal.Decimal
	Unit        string
	Notes       string
}

// CreateExpenseUseCase handles creating a new expense.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates and creates the expense. Write failures propagate to the
// caller; the form is responsible for messaging and must not clear on error.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input.Date, input.Description, input.Amount); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := uc.resolveCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	created := entity.NewExpense(
		input.UserID,
		input.Date,
		input.CategoryID,
		input.Description,
		input.Amount,
		input.Quantity,
		input.Unit,
		input.Notes,
	)

	if err := uc.expenseRepo.Create(ctx, created); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseWriteFailed,
			"failed to create expense",
			err,
		)
	}
	return created, nil
}

func (uc *CreateExpenseUseCase) resolveCategory(ctx context.Context, id uuid.UUID) error {
	_, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				err,
			)
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	return nil
}

func validateExpenseInput(date time.Time, description string, amount decimal.Decimal) error {
	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}
	if description == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeAmount,
			"amount must be non-negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}
