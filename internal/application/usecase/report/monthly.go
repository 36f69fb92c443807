// Package report contains the pure aggregation functions and the dashboard
// use cases that feed them. Everything in this package is deterministic and
// side-effect-free: identical input rows always produce identical buckets,
// regardless of input ordering.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLabels is the fixed 12-entry calendar used by every month-indexed
// chart. Buckets are always emitted in this order, with zero amounts for
// empty months, so x-axes stay uniform.
var MonthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DatedAmount is the minimal shape monthly bucketing folds over.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// MonthBucket is one of the twelve ordered buckets for a target year.
type MonthBucket struct {
	Month  string
	Amount decimal.Decimal
}

// MonthlyBuckets folds rows into exactly 12 ordered Jan-Dec buckets, summing
// amounts of rows whose date falls in the target year. Rows outside the year
// are excluded entirely.
func MonthlyBuckets(rows []DatedAmount, year int) []MonthBucket {
	sums := [12]decimal.Decimal{}
	for i := range sums {
		sums[i] = decimal.Zero
	}

	for _, row := range rows {
		if row.Date.Year() != year {
			continue
		}
		idx := int(row.Date.Month()) - 1
		sums[idx] = sums[idx].Add(row.Amount)
	}

	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i] = MonthBucket{Month: MonthLabels[i], Amount: sums[i]}
	}
	return buckets
}

// BucketsToMap converts a bucket slice into a month-label keyed map.
func BucketsToMap(buckets []MonthBucket) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(buckets))
	for _, b := range buckets {
		m[b.Month] = b.Amount
	}
	return m
}

// MonthOverMonth returns the percent change from previous to current.
// A zero baseline yields 0, never an error or infinity.
func MonthOverMonth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}
