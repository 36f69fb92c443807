package dto

import (
	"github.com/finance-pulse/backend/internal/application/usecase/report"
)

// SourceSummaryResponse represents the summary of one revenue source.
type SourceSummaryResponse struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// SummaryResponse represents the dashboard summary for a year.
type SummaryResponse struct {
	Orders        SourceSummaryResponse `json:"orders"`
	Markets       SourceSummaryResponse `json:"markets"`
	Courses       SourceSummaryResponse `json:"courses"`
	RevenueTotal  float64               `json:"revenue_total"`
	RevenueCount  int                   `json:"revenue_count"`
	ExpenseTotal  float64               `json:"expense_total"`
	ExpenseCount  int                   `json:"expense_count"`
	Profit        float64               `json:"profit"`
	FailedSources []string              `json:"failed_sources,omitempty"`
}

// MonthBucketResponse represents one month's aggregated amount.
type MonthBucketResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// MonthlyReportResponse represents the per-month revenue and expense series.
type MonthlyReportResponse struct {
	Year          int                   `json:"year"`
	Revenue       []MonthBucketResponse `json:"revenue"`
	Expenses      []MonthBucketResponse `json:"expenses"`
	RevenueChange []float64             `json:"revenue_change"`
	FailedSources []string              `json:"failed_sources,omitempty"`
}

// ProfitLossRowResponse represents one month's profit and loss row.
type ProfitLossRowResponse struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

// ProfitLossResponse represents the profit and loss table for a year.
type ProfitLossResponse struct {
	Year          int                     `json:"year"`
	Rows          []ProfitLossRowResponse `json:"rows"`
	FailedSources []string                `json:"failed_sources,omitempty"`
}

// ForecastPointResponse represents one projected future period.
type ForecastPointResponse struct {
	Period int     `json:"period"`
	Amount float64 `json:"amount"`
}

// ForecastResponse represents the revenue projection for a year.
type ForecastResponse struct {
	Year          int                     `json:"year"`
	GrowthRate    float64                 `json:"growth_rate"`
	Points        []ForecastPointResponse `json:"points"`
	FailedSources []string                `json:"failed_sources,omitempty"`
}

// ToSummaryResponse converts the summary use case output to its DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	revenueTotal, _ := output.Revenue.Total.Float64()
	expenseTotal, _ := output.ExpenseTotal.Float64()
	profit, _ := output.Profit.Float64()
	return SummaryResponse{
		Orders:        toSourceSummaryResponse(output.Revenue.Orders),
		Markets:       toSourceSummaryResponse(output.Revenue.Markets),
		Courses:       toSourceSummaryResponse(output.Revenue.Courses),
		RevenueTotal:  revenueTotal,
		RevenueCount:  output.Revenue.Count,
		ExpenseTotal:  expenseTotal,
		ExpenseCount:  output.ExpenseCount,
		Profit:        profit,
		FailedSources: output.FailedSources,
	}
}

// ToMonthlyReportResponse converts the monthly report output to its DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	change := make([]float64, len(output.RevenueChange))
	for i, c := range output.RevenueChange {
		change[i], _ = c.Float64()
	}
	return MonthlyReportResponse{
		Year:          output.Year,
		Revenue:       toMonthBucketResponses(output.Revenue),
		Expenses:      toMonthBucketResponses(output.Expenses),
		RevenueChange: change,
		FailedSources: output.FailedSources,
	}
}

// ToProfitLossResponse converts the profit/loss output to its DTO.
func ToProfitLossResponse(output *report.GetProfitLossOutput) ProfitLossResponse {
	rows := make([]ProfitLossRowResponse, len(output.Rows))
	for i, r := range output.Rows {
		revenue, _ := r.Revenue.Float64()
		expenses, _ := r.Expenses.Float64()
		profit, _ := r.Profit.Float64()
		margin, _ := r.Margin.Float64()
		rows[i] = ProfitLossRowResponse{
			Month:    r.Month,
			Revenue:  revenue,
			Expenses: expenses,
			Profit:   profit,
			Margin:   margin,
		}
	}
	return ProfitLossResponse{
		Year:          output.Year,
		Rows:          rows,
		FailedSources: output.FailedSources,
	}
}

// ToForecastResponse converts the forecast output to its DTO.
func ToForecastResponse(output *report.GetForecastOutput) ForecastResponse {
	rate, _ := output.Forecast.GrowthRate.Float64()
	points := make([]ForecastPointResponse, len(output.Forecast.Points))
	for i, p := range output.Forecast.Points {
		amount, _ := p.Amount.Float64()
		points[i] = ForecastPointResponse{Period: p.Period, Amount: amount}
	}
	return ForecastResponse{
		Year:          output.Year,
		GrowthRate:    rate,
		Points:        points,
		FailedSources: output.FailedSources,
	}
}

func toSourceSummaryResponse(s report.SourceSummary) SourceSummaryResponse {
	total, _ := s.Total.Float64()
	percent, _ := s.Percent.Float64()
	return SourceSummaryResponse{Total: total, Count: s.Count, Percent: percent}
}

func toMonthBucketResponses(buckets []report.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, len(buckets))
	for i, b := range buckets {
		amount, _ := b.Amount.Float64()
		out[i] = MonthBucketResponse{Month: b.Month, Amount: amount}
	}
	return out
}
