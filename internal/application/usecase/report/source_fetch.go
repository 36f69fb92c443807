package report

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
)

// Source names reported back to the presentation layer when a fetch fails.
const (
	sourceOrders   = "orders"
	sourceMarkets  = "markets"
	sourceCourses  = "courses"
	sourceExpenses = "expenses"
)

// sourceData is the joined result of the per-view reads. All reads for a view
// are issued concurrently and joined here before any aggregation runs;
// partial results are never aggregated. A failed source contributes zero rows
// and its name in failed, so "fetch failed" stays distinguishable from
// "empty" all the way up.
type sourceData struct {
	orders   []*entity.Order
	markets  []*entity.Market
	courses  []*entity.Course
	expenses []*entity.Expense
	failed   []string
}

// fetchRevenueSources reads the three revenue tables concurrently and joins.
func fetchRevenueSources(
	ctx context.Context,
	repo adapter.RevenueRepository,
	userID uuid.UUID,
	dateRange adapter.DateRange,
) sourceData {
	var data sourceData
	var ordersErr, marketsErr, coursesErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.orders, ordersErr = repo.FindOrders(gctx, userID, dateRange)
		return nil
	})
	g.Go(func() error {
		data.markets, marketsErr = repo.FindMarkets(gctx, userID, dateRange)
		return nil
	})
	g.Go(func() error {
		data.courses, coursesErr = repo.FindCourses(gctx, userID, dateRange)
		return nil
	})
	_ = g.Wait()

	data.recordFailure(sourceOrders, ordersErr)
	data.recordFailure(sourceMarkets, marketsErr)
	data.recordFailure(sourceCourses, coursesErr)
	return data
}

// fetchAllSources reads the revenue tables and the expenses table
// concurrently and joins.
func fetchAllSources(
	ctx context.Context,
	revenueRepo adapter.RevenueRepository,
	expenseRepo adapter.ExpenseRepository,
	userID uuid.UUID,
	dateRange adapter.DateRange,
) sourceData {
	var data sourceData
	var ordersErr, marketsErr, coursesErr, expensesErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.orders, ordersErr = revenueRepo.FindOrders(gctx, userID, dateRange)
		return nil
	})
	g.Go(func() error {
		data.markets, marketsErr = revenueRepo.FindMarkets(gctx, userID, dateRange)
		return nil
	})
	g.Go(func() error {
		data.courses, coursesErr = revenueRepo.FindCourses(gctx, userID, dateRange)
		return nil
	})
	g.Go(func() error {
		data.expenses, expensesErr = expenseRepo.FindByFilter(gctx, adapter.ExpenseFilter{
			UserID:    userID,
			StartDate: dateRange.Start,
			EndDate:   dateRange.End,
		})
		return nil
	})
	_ = g.Wait()

	data.recordFailure(sourceOrders, ordersErr)
	data.recordFailure(sourceMarkets, marketsErr)
	data.recordFailure(sourceCourses, coursesErr)
	data.recordFailure(sourceExpenses, expensesErr)
	return data
}

func (d *sourceData) recordFailure(source string, err error) {
	if err == nil {
		return
	}
	slog.Warn("dashboard source fetch failed", "source", source, "error", err)
	d.failed = append(d.failed, source)
	sort.Strings(d.failed)
}

// revenueTransactions normalizes the joined revenue rows.
func (d *sourceData) revenueTransactions() []entity.RevenueTransaction {
	return NormalizeRevenue(d.orders, d.markets, d.courses)
}

// revenueAmounts flattens revenue rows into the bucketing shape.
func (d *sourceData) revenueAmounts() []DatedAmount {
	transactions := d.revenueTransactions()
	amounts := make([]DatedAmount, len(transactions))
	for i, t := range transactions {
		amounts[i] = DatedAmount{Date: t.Date, Amount: t.Amount}
	}
	return amounts
}

// expenseAmounts flattens expense rows into the bucketing shape.
func (d *sourceData) expenseAmounts() []DatedAmount {
	amounts := make([]DatedAmount, len(d.expenses))
	for i, e := range d.expenses {
		amounts[i] = DatedAmount{Date: e.Date, Amount: e.Amount}
	}
	return amounts
}

// yearRange bounds a read to a single calendar year in UTC.
func yearRange(year int) adapter.DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return adapter.DateRange{Start: &start, End: &end}
}
