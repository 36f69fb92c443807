package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles deleting an expense.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense after confirming it exists and belongs to the
// caller. Write failures propagate.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := findOwnedExpense(ctx, uc.expenseRepo, input.UserID, input.ExpenseID); err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, input.UserID, input.ExpenseID); err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseWriteFailed,
			"failed to delete expense",
			err,
		)
	}
	return nil
}
