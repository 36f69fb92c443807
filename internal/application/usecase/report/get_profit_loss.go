package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
)

// GetProfitLossInput represents the input for the profit/loss report.
type GetProfitLossInput struct {
	UserID uuid.UUID
	Year   int
}

// GetProfitLossOutput holds the merged monthly profit/loss rows.
type GetProfitLossOutput struct {
	Year          int
	Rows          []ProfitLossRow
	FailedSources []string
}

// GetProfitLossUseCase merges monthly revenue and expenses into P/L rows.
type GetProfitLossUseCase struct {
	revenueRepo adapter.RevenueRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(revenueRepo adapter.RevenueRepository, expenseRepo adapter.ExpenseRepository) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute buckets both sides for the year and merges them month by month.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, input GetProfitLossInput) (*GetProfitLossOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	data := fetchAllSources(ctx, uc.revenueRepo, uc.expenseRepo, input.UserID, yearRange(input.Year))

	revenueByMonth := dropEmptyMonths(BucketsToMap(MonthlyBuckets(data.revenueAmounts(), input.Year)))
	expensesByMonth := dropEmptyMonths(BucketsToMap(MonthlyBuckets(data.expenseAmounts(), input.Year)))

	return &GetProfitLossOutput{
		Year:          input.Year,
		Rows:          ProfitLossRows(revenueByMonth, expensesByMonth),
		FailedSources: data.failed,
	}, nil
}

// dropEmptyMonths removes zero-amount months so the merge only emits months
// that carry data on at least one side.
func dropEmptyMonths(byMonth map[string]decimal.Decimal) map[string]decimal.Decimal {
	for month, amount := range byMonth {
		if amount.IsZero() {
			delete(byMonth, month)
		}
	}
	return byMonth
}
