// Package report contains dashboard aggregation use cases.
package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyBuckets(t *testing.T) {
	t.Run("always yields 12 ordered buckets", func(t *testing.T) {
		buckets := MonthlyBuckets(nil, 2025)
		if len(buckets) != 12 {
			t.Fatalf("expected 12 buckets, got %d", len(buckets))
		}
		for i, b := range buckets {
			if b.Month != MonthLabels[i] {
				t.Errorf("expected bucket %d to be %s, got %s", i, MonthLabels[i], b.Month)
			}
			if !b.Amount.IsZero() {
				t.Errorf("expected empty month %s to be zero, got %s", b.Month, b.Amount)
			}
		}
	})

	t.Run("sums rows into their month", func(t *testing.T) {
		rows := []DatedAmount{
			{Date: date(2025, time.March, 3), Amount: decimal.NewFromInt(50)},
			{Date: date(2025, time.March, 21), Amount: decimal.NewFromInt(30)},
			{Date: date(2025, time.January, 10), Amount: decimal.NewFromInt(10)},
		}

		buckets := MonthlyBuckets(rows, 2025)
		if !buckets[2].Amount.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected Mar = 80, got %s", buckets[2].Amount)
		}
		if !buckets[0].Amount.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected Jan = 10, got %s", buckets[0].Amount)
		}
	})

	t.Run("excludes rows outside the target year", func(t *testing.T) {
		rows := []DatedAmount{
			{Date: date(2024, time.December, 31), Amount: decimal.NewFromInt(100)},
			{Date: date(2026, time.January, 1), Amount: decimal.NewFromInt(100)},
			{Date: date(2025, time.June, 15), Amount: decimal.NewFromInt(42)},
		}

		buckets := MonthlyBuckets(rows, 2025)
		total := decimal.Zero
		for _, b := range buckets {
			total = total.Add(b.Amount)
		}
		if !total.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected only in-year rows summed, got total %s", total)
		}
	})
}

func TestMonthOverMonth(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		want     decimal.Decimal
	}{
		{
			name:     "growth",
			current:  decimal.NewFromInt(150),
			previous: decimal.NewFromInt(100),
			want:     decimal.NewFromInt(50),
		},
		{
			name:     "decline",
			current:  decimal.NewFromInt(75),
			previous: decimal.NewFromInt(100),
			want:     decimal.NewFromInt(-25),
		},
		{
			name:     "zero baseline yields zero",
			current:  decimal.NewFromInt(200),
			previous: decimal.Zero,
			want:     decimal.Zero,
		},
		{
			name:     "flat",
			current:  decimal.NewFromInt(100),
			previous: decimal.NewFromInt(100),
			want:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthOverMonth(tt.current, tt.previous)
			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBucketsToMap(t *testing.T) {
	rows := []DatedAmount{
		{Date: date(2025, time.February, 1), Amount: decimal.NewFromInt(7)},
	}
	m := BucketsToMap(MonthlyBuckets(rows, 2025))
	if len(m) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(m))
	}
	if !m["Feb"].Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected Feb = 7, got %s", m["Feb"])
	}
}
