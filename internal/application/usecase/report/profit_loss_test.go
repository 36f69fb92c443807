package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProfitLossRows(t *testing.T) {
	t.Run("merges months present on either side", func(t *testing.T) {
		revenue := map[string]decimal.Decimal{
			"Jan": decimal.NewFromInt(100),
		}
		expenses := map[string]decimal.Decimal{
			"Feb": decimal.NewFromInt(40),
		}

		rows := ProfitLossRows(revenue, expenses)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}

		jan := rows[0]
		if jan.Month != "Jan" {
			t.Fatalf("expected first row Jan, got %s", jan.Month)
		}
		if !jan.Revenue.Equal(decimal.NewFromInt(100)) || !jan.Expenses.IsZero() {
			t.Errorf("expected Jan revenue 100 / expenses 0, got %s / %s", jan.Revenue, jan.Expenses)
		}
		if !jan.Profit.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected Jan profit 100, got %s", jan.Profit)
		}

		feb := rows[1]
		if feb.Month != "Feb" {
			t.Fatalf("expected second row Feb, got %s", feb.Month)
		}
		if !feb.Revenue.IsZero() || !feb.Expenses.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected Feb revenue 0 / expenses 40, got %s / %s", feb.Revenue, feb.Expenses)
		}
		if !feb.Profit.Equal(decimal.NewFromInt(-40)) {
			t.Errorf("expected Feb profit -40, got %s", feb.Profit)
		}
	})

	t.Run("computes margin against revenue", func(t *testing.T) {
		revenue := map[string]decimal.Decimal{
			"Mar": decimal.NewFromInt(200),
		}
		expenses := map[string]decimal.Decimal{
			"Mar": decimal.NewFromInt(50),
		}

		rows := ProfitLossRows(revenue, expenses)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if !rows[0].Margin.Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected margin 75, got %s", rows[0].Margin)
		}
	})

	t.Run("zero revenue yields zero margin", func(t *testing.T) {
		expenses := map[string]decimal.Decimal{
			"Apr": decimal.NewFromInt(30),
		}

		rows := ProfitLossRows(map[string]decimal.Decimal{}, expenses)
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if !rows[0].Margin.IsZero() {
			t.Errorf("expected zero margin with no revenue, got %s", rows[0].Margin)
		}
	})

	t.Run("rows come out in calendar order", func(t *testing.T) {
		revenue := map[string]decimal.Decimal{
			"Dec": decimal.NewFromInt(1),
			"Jan": decimal.NewFromInt(1),
			"Jun": decimal.NewFromInt(1),
		}

		rows := ProfitLossRows(revenue, map[string]decimal.Decimal{})
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		want := []string{"Jan", "Jun", "Dec"}
		for i, row := range rows {
			if row.Month != want[i] {
				t.Errorf("expected row %d to be %s, got %s", i, want[i], row.Month)
			}
		}
	})

	t.Run("empty inputs yield no rows", func(t *testing.T) {
		rows := ProfitLossRows(map[string]decimal.Decimal{}, map[string]decimal.Decimal{})
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}
