package expense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

func TestUpdateExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("applies only the provided fields", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		existing := storedExpense(userID, nil, "flour")
		repo.expenses[existing.ID] = existing

		uc := NewUpdateExpenseUseCase(repo, &fakeCategoryRepo{})

		amount := decimal.NewFromInt(99)
		updated, err := uc.Execute(context.Background(), UpdateExpenseInput{
			UserID:    userID,
			ExpenseID: existing.ID,
			Amount:    &amount,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !updated.Amount.Equal(amount) {
			t.Errorf("expected amount 99, got %s", updated.Amount)
		}
		if updated.Description != "flour" {
			t.Errorf("expected description unchanged, got %s", updated.Description)
		}
	})

	t.Run("revalidates the merged result", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		existing := storedExpense(userID, nil, "flour")
		repo.expenses[existing.ID] = existing

		uc := NewUpdateExpenseUseCase(repo, &fakeCategoryRepo{})

		empty := ""
		_, err := uc.Execute(context.Background(), UpdateExpenseInput{
			UserID:      userID,
			ExpenseID:   existing.ID,
			Description: &empty,
		})
		if code := expenseErrCode(t, err); code != domainerror.ErrCodeMissingDescription {
			t.Errorf("expected missing-description code, got %s", code)
		}
	})

	t.Run("unknown expense yields not found", func(t *testing.T) {
		uc := NewUpdateExpenseUseCase(newFakeExpenseRepo(), &fakeCategoryRepo{})

		description := "new"
		_, err := uc.Execute(context.Background(), UpdateExpenseInput{
			UserID:      userID,
			ExpenseID:   uuid.New(),
			Description: &description,
		})
		if code := expenseErrCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not-found code, got %s", code)
		}
	})

	t.Run("cannot update another user's expense", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		other := storedExpense(uuid.New(), nil, "theirs")
		repo.expenses[other.ID] = other

		uc := NewUpdateExpenseUseCase(repo, &fakeCategoryRepo{})

		description := "mine now"
		_, err := uc.Execute(context.Background(), UpdateExpenseInput{
			UserID:      userID,
			ExpenseID:   other.ID,
			Description: &description,
		})
		if code := expenseErrCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not-found code, got %s", code)
		}
	})
}

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes an owned expense", func(t *testing.T) {
		repo := newFakeExpenseRepo()
		existing := storedExpense(userID, nil, "flour")
		repo.expenses[existing.ID] = existing

		uc := NewDeleteExpenseUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteExpenseInput{
			UserID:    userID,
			ExpenseID: existing.ID,
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, ok := repo.expenses[existing.ID]; ok {
			t.Error("expected the expense to be removed")
		}
	})

	t.Run("unknown expense yields not found", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepo())

		err := uc.Execute(context.Background(), DeleteExpenseInput{
			UserID:    userID,
			ExpenseID: uuid.New(),
		})
		if code := expenseErrCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not-found code, got %s", code)
		}
	})
}

func TestUpdateExpenseUseCase_DateMerge(t *testing.T) {
	userID := uuid.New()
	repo := newFakeExpenseRepo()
	existing := storedExpense(userID, nil, "flour")
	repo.expenses[existing.ID] = existing

	uc := NewUpdateExpenseUseCase(repo, &fakeCategoryRepo{})

	newDate := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	updated, err := uc.Execute(context.Background(), UpdateExpenseInput{
		UserID:    userID,
		ExpenseID: existing.ID,
		Date:      &newDate,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated.Date.Equal(newDate) {
		t.Errorf("expected date %s, got %s", newDate, updated.Date)
	}
}
