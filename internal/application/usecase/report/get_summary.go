package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Year   int
}

// GetSummaryOutput represents the aggregated dashboard summary.
type GetSummaryOutput struct {
	Revenue       RevenueSummary
	ExpenseTotal  decimal.Decimal
	ExpenseCount  int
	Profit        decimal.Decimal
	FailedSources []string
}

// GetSummaryUseCase computes the revenue/expense summary for a year.
type GetSummaryUseCase struct {
	revenueRepo adapter.RevenueRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(revenueRepo adapter.RevenueRepository, expenseRepo adapter.ExpenseRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute fetches all sources concurrently, joins, and aggregates. Failed
// sources contribute zero rows and are reported by name; a single failed
// source never fails the whole view.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	data := fetchAllSources(ctx, uc.revenueRepo, uc.expenseRepo, input.UserID, yearRange(input.Year))

	summary := SummarizeRevenue(data.orders, data.markets, data.courses)

	expenseTotal := decimal.Zero
	for _, e := range data.expenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	return &GetSummaryOutput{
		Revenue:       summary,
		ExpenseTotal:  expenseTotal,
		ExpenseCount:  len(data.expenses),
		Profit:        summary.Total.Sub(expenseTotal),
		FailedSources: data.failed,
	}, nil
}
