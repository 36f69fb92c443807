package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

func TestGetForecastUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("projects from the last month with data", func(t *testing.T) {
		// Jan..Mar carry 10% growth; Apr..Dec are empty and must not drag
		// the series down to zero.
		revenueRepo := &fakeRevenueRepo{
			orders: []*entity.Order{
				{OrderDate: date(2025, time.January, 1), TotalAmount: decimal.NewFromInt(100)},
				{OrderDate: date(2025, time.February, 1), TotalAmount: decimal.NewFromInt(110)},
				{OrderDate: date(2025, time.March, 1), TotalAmount: decimal.NewFromInt(121)},
			},
		}

		output, err := NewGetForecastUseCase(revenueRepo).Execute(context.Background(), GetForecastInput{
			UserID: userID,
			Year:   2025,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Forecast.GrowthRate.Equal(decimal.NewFromFloat(0.1)) {
			t.Errorf("expected growth rate 0.1, got %s", output.Forecast.GrowthRate)
		}
		if !output.Forecast.Points[0].Amount.Equal(decimal.NewFromFloat(133.1)) {
			t.Errorf("expected first projection 133.1, got %s", output.Forecast.Points[0].Amount)
		}
	})

	t.Run("no revenue projects zeros", func(t *testing.T) {
		output, err := NewGetForecastUseCase(&fakeRevenueRepo{}).Execute(context.Background(), GetForecastInput{
			UserID: userID,
			Year:   2025,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Forecast.GrowthRate.IsZero() {
			t.Errorf("expected zero growth rate, got %s", output.Forecast.GrowthRate)
		}
		for _, p := range output.Forecast.Points {
			if !p.Amount.IsZero() {
				t.Errorf("expected zero projections, got %s", p.Amount)
			}
		}
	})

	t.Run("failed sources are reported", func(t *testing.T) {
		revenueRepo := &fakeRevenueRepo{
			coursesErr: errors.New("courses table unavailable"),
		}

		output, err := NewGetForecastUseCase(revenueRepo).Execute(context.Background(), GetForecastInput{
			UserID: userID,
			Year:   2025,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.FailedSources) != 1 || output.FailedSources[0] != "courses" {
			t.Errorf("expected failed sources [courses], got %v", output.FailedSources)
		}
	})
}

func TestGetProfitLossUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	revenueRepo := &fakeRevenueRepo{
		orders: []*entity.Order{
			{OrderDate: date(2025, time.January, 5), TotalAmount: decimal.NewFromInt(100)},
		},
	}
	expenseRepo := &fakeExpenseRepo{
		expenses: []*entity.Expense{
			{Date: date(2025, time.February, 10), Description: "rent", Amount: decimal.NewFromInt(40)},
		},
	}

	output, err := NewGetProfitLossUseCase(revenueRepo, expenseRepo).Execute(context.Background(), GetProfitLossInput{
		UserID: userID,
		Year:   2025,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Only months with data on at least one side come out.
	if len(output.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(output.Rows))
	}
	if output.Rows[0].Month != "Jan" || !output.Rows[0].Profit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected Jan profit 100, got %s %s", output.Rows[0].Month, output.Rows[0].Profit)
	}
	if output.Rows[1].Month != "Feb" || !output.Rows[1].Profit.Equal(decimal.NewFromInt(-40)) {
		t.Errorf("expected Feb profit -40, got %s %s", output.Rows[1].Month, output.Rows[1].Profit)
	}
}

func TestGetRevenueTransactionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the normalized union newest first", func(t *testing.T) {
		revenueRepo := &fakeRevenueRepo{
			orders:  []*entity.Order{testOrder(5, 100, 10)},
			markets: []*entity.Market{testMarket(20, 300)},
			courses: []*entity.Course{testCourse(10, 50)},
		}

		output, err := NewGetRevenueTransactionsUseCase(revenueRepo).Execute(context.Background(), GetRevenueTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		if output.Transactions[0].Source != entity.RevenueSourceMarket {
			t.Errorf("expected newest transaction from markets, got %s", output.Transactions[0].Source)
		}
	})

	t.Run("a failed source drops its rows only", func(t *testing.T) {
		revenueRepo := &fakeRevenueRepo{
			orders:     []*entity.Order{testOrder(5, 100, 0)},
			marketsErr: errors.New("markets table unavailable"),
		}

		output, err := NewGetRevenueTransactionsUseCase(revenueRepo).Execute(context.Background(), GetRevenueTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(output.Transactions))
		}
		if len(output.FailedSources) != 1 || output.FailedSources[0] != "markets" {
			t.Errorf("expected failed sources [markets], got %v", output.FailedSources)
		}
	})
}
