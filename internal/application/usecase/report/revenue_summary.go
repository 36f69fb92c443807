package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// SourceSummary aggregates one revenue source.
type SourceSummary struct {
	Total   decimal.Decimal
	Count   int
	Percent decimal.Decimal // Share of total revenue; 0 when total is 0
}

// RevenueSummary aggregates the three revenue sources independently and
// combined.
type RevenueSummary struct {
	Orders  SourceSummary
	Markets SourceSummary
	Courses SourceSummary
	Total   decimal.Decimal
	Count   int
}

// SummarizeRevenue folds the three source collections into a summary.
// Percentage-of-total is 0 for every source when total revenue is 0.
func SummarizeRevenue(orders []*entity.Order, markets []*entity.Market, courses []*entity.Course) RevenueSummary {
	summary := RevenueSummary{Total: decimal.Zero}

	summary.Orders = SourceSummary{Total: decimal.Zero, Count: len(orders)}
	for _, o := range orders {
		summary.Orders.Total = summary.Orders.Total.Add(o.Revenue())
	}

	summary.Markets = SourceSummary{Total: decimal.Zero, Count: len(markets)}
	for _, m := range markets {
		summary.Markets.Total = summary.Markets.Total.Add(m.FinalIncoming)
	}

	summary.Courses = SourceSummary{Total: decimal.Zero, Count: len(courses)}
	for _, c := range courses {
		summary.Courses.Total = summary.Courses.Total.Add(c.TotalAmount)
	}

	summary.Total = summary.Orders.Total.Add(summary.Markets.Total).Add(summary.Courses.Total)
	summary.Count = summary.Orders.Count + summary.Markets.Count + summary.Courses.Count

	summary.Orders.Percent = percentOf(summary.Orders.Total, summary.Total)
	summary.Markets.Percent = percentOf(summary.Markets.Total, summary.Total)
	summary.Courses.Percent = percentOf(summary.Courses.Total, summary.Total)

	return summary
}

// NormalizeRevenue converts the heterogeneous source collections into the
// common revenue transaction shape, sorted by date descending.
func NormalizeRevenue(orders []*entity.Order, markets []*entity.Market, courses []*entity.Course) []entity.RevenueTransaction {
	transactions := make([]entity.RevenueTransaction, 0, len(orders)+len(markets)+len(courses))
	for _, o := range orders {
		transactions = append(transactions, o.Normalize())
	}
	for _, m := range markets {
		transactions = append(transactions, m.Normalize())
	}
	for _, c := range courses {
		transactions = append(transactions, c.Normalize())
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

// percentOf guards division by zero by treating the share as 0 when the
// total is 0.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100))
}
