package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
)

// GetRevenueTransactionsInput represents the input for listing normalized
// revenue transactions.
type GetRevenueTransactionsInput struct {
	UserID    uuid.UUID
	DateRange adapter.DateRange
}

// GetRevenueTransactionsOutput holds the normalized union of the three
// revenue sources, newest first.
type GetRevenueTransactionsOutput struct {
	Transactions  []entity.RevenueTransaction
	FailedSources []string
}

// GetRevenueTransactionsUseCase lists the normalized revenue union.
type GetRevenueTransactionsUseCase struct {
	revenueRepo adapter.RevenueRepository
}

// NewGetRevenueTransactionsUseCase creates a new GetRevenueTransactionsUseCase instance.
func NewGetRevenueTransactionsUseCase(revenueRepo adapter.RevenueRepository) *GetRevenueTransactionsUseCase {
	return &GetRevenueTransactionsUseCase{
		revenueRepo: revenueRepo,
	}
}

// Execute fetches the three sources concurrently, joins, and normalizes.
func (uc *GetRevenueTransactionsUseCase) Execute(ctx context.Context, input GetRevenueTransactionsInput) (*GetRevenueTransactionsOutput, error) {
	data := fetchRevenueSources(ctx, uc.revenueRepo, input.UserID, input.DateRange)

	return &GetRevenueTransactionsOutput{
		Transactions:  data.revenueTransactions(),
		FailedSources: data.failed,
	}, nil
}
