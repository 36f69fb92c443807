package report

import (
	"github.com/shopspring/decimal"
)

const (
	// forecastPeriods is how many future periods are projected.
	forecastPeriods = 6
	// trailingWindow is how many trailing points feed the growth rate.
	trailingWindow = 3
)

// growthClamp bounds the period-over-period growth rate to avoid runaway
// extrapolation from a short baseline.
var growthClamp = decimal.NewFromFloat(0.20)

// ForecastPoint is one projected future period.
type ForecastPoint struct {
	Period int
	Amount decimal.Decimal
}

// Forecast holds the projection and the rate that produced it.
type Forecast struct {
	GrowthRate decimal.Decimal // Fractional, already clamped to [-0.20, 0.20]
	Points     []ForecastPoint
}

// ProjectForecast computes an average period-over-period growth rate from the
// trailing 3 data points, clamps it to [-20%, +20%], and projects 6 future
// periods by compounding the last known value. With fewer than 2 trailing
// points the rate defaults to 0 and the projection stays flat at the last
// known value.
func ProjectForecast(points []decimal.Decimal) Forecast {
	rate := averageGrowthRate(points)
	rate = clamp(rate, growthClamp.Neg(), growthClamp)

	last := decimal.Zero
	if len(points) > 0 {
		last = points[len(points)-1]
	}

	projected := make([]ForecastPoint, forecastPeriods)
	value := last
	for i := range projected {
		value = value.Mul(decimal.NewFromInt(1).Add(rate))
		projected[i] = ForecastPoint{Period: i + 1, Amount: value}
	}

	return Forecast{GrowthRate: rate, Points: projected}
}

// averageGrowthRate averages the period-over-period growth over the trailing
// window. Pairs with a zero predecessor contribute nothing; fewer than 2
// usable points yield 0.
func averageGrowthRate(points []decimal.Decimal) decimal.Decimal {
	if len(points) < 2 {
		return decimal.Zero
	}

	window := points
	if len(window) > trailingWindow {
		window = window[len(window)-trailingWindow:]
	}

	sum := decimal.Zero
	count := 0
	for i := 1; i < len(window); i++ {
		if window[i-1].IsZero() {
			continue
		}
		sum = sum.Add(window[i].Sub(window[i-1]).Div(window[i-1]))
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
