package report

import (
	"github.com/shopspring/decimal"
)

// ProfitLossRow is one merged month of revenue versus expenses.
type ProfitLossRow struct {
	Month    string
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
	Margin   decimal.Decimal // Profit as a percentage of revenue; 0 when revenue is 0
}

// ProfitLossRows merges a revenue-by-month map and an expense-by-month map
// keyed by month label. A month present in either map but not the other gets
// 0 for the missing side. Rows come out in fixed calendar order; months
// absent from both maps are omitted.
func ProfitLossRows(revenueByMonth, expensesByMonth map[string]decimal.Decimal) []ProfitLossRow {
	rows := make([]ProfitLossRow, 0, 12)

	for _, month := range MonthLabels {
		revenue, hasRevenue := revenueByMonth[month]
		expenses, hasExpenses := expensesByMonth[month]
		if !hasRevenue && !hasExpenses {
			continue
		}
		if !hasRevenue {
			revenue = decimal.Zero
		}
		if !hasExpenses {
			expenses = decimal.Zero
		}

		profit := revenue.Sub(expenses)
		rows = append(rows, ProfitLossRow{
			Month:    month,
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   profit,
			Margin:   percentOf(profit, revenue),
		})
	}
	return rows
}
