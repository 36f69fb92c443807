package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// GetMonthlyReportInput represents the input for a month-bucketed report.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Year   int
}

// GetMonthlyReportOutput holds the 12 revenue and 12 expense buckets for the
// target year, plus the revenue month-over-month change series.
type GetMonthlyReportOutput struct {
	Year          int
	Revenue       []MonthBucket
	Expenses      []MonthBucket
	RevenueChange []decimal.Decimal // Percent change vs previous month; 0 for Jan
	FailedSources []string
}

// GetMonthlyReportUseCase computes the monthly revenue and expense buckets.
type GetMonthlyReportUseCase struct {
	revenueRepo adapter.RevenueRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(revenueRepo adapter.RevenueRepository, expenseRepo adapter.ExpenseRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the year's rows from every source concurrently and buckets
// them into the fixed Jan-Dec calendar.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	data := fetchAllSources(ctx, uc.revenueRepo, uc.expenseRepo, input.UserID, yearRange(input.Year))

	revenue := MonthlyBuckets(data.revenueAmounts(), input.Year)
	expenses := MonthlyBuckets(data.expenseAmounts(), input.Year)

	change := make([]decimal.Decimal, len(revenue))
	change[0] = decimal.Zero
	for i := 1; i < len(revenue); i++ {
		change[i] = MonthOverMonth(revenue[i].Amount, revenue[i-1].Amount)
	}

	return &GetMonthlyReportOutput{
		Year:          input.Year,
		Revenue:       revenue,
		Expenses:      expenses,
		RevenueChange: change,
		FailedSources: data.failed,
	}, nil
}

func validateYear(year int) error {
	if year < 1000 || year > 9999 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			"year must be a four-digit calendar year",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
