package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/application/adapter"
)

// GetForecastInput represents the input for the revenue forecast.
type GetForecastInput struct {
	UserID uuid.UUID
	Year   int
}

// GetForecastOutput holds the 6-period projection.
type GetForecastOutput struct {
	Year          int
	Forecast      Forecast
	FailedSources []string
}

// GetForecastUseCase projects revenue forward from the year's monthly series.
type GetForecastUseCase struct {
	revenueRepo adapter.RevenueRepository
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(revenueRepo adapter.RevenueRepository) *GetForecastUseCase {
	return &GetForecastUseCase{
		revenueRepo: revenueRepo,
	}
}

// Execute buckets the year's revenue, trims trailing empty months so the
// projection compounds from the last month that actually has data, and
// projects 6 periods forward.
func (uc *GetForecastUseCase) Execute(ctx context.Context, input GetForecastInput) (*GetForecastOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	data := fetchRevenueSources(ctx, uc.revenueRepo, input.UserID, yearRange(input.Year))

	buckets := MonthlyBuckets(data.revenueAmounts(), input.Year)

	lastWithData := -1
	for i, b := range buckets {
		if !b.Amount.IsZero() {
			lastWithData = i
		}
	}

	series := make([]decimal.Decimal, 0, 12)
	for i := 0; i <= lastWithData; i++ {
		series = append(series, buckets[i].Amount)
	}

	return &GetForecastOutput{
		Year:          input.Year,
		Forecast:      ProjectForecast(series),
		FailedSources: data.failed,
	}, nil
}
