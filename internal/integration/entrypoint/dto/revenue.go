package dto

import (
	"time"

	"github.com/finance-pulse/backend/internal/application/usecase/report"
	"github.com/finance-pulse/backend/internal/domain/entity"
)

// RevenueTransactionResponse represents one normalized revenue transaction.
type RevenueTransactionResponse struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
}

// RevenueTransactionListResponse represents the normalized revenue union.
type RevenueTransactionListResponse struct {
	Transactions  []RevenueTransactionResponse `json:"transactions"`
	Total         int                          `json:"total"`
	FailedSources []string                     `json:"failed_sources,omitempty"`
}

// ToRevenueTransactionListResponse converts the use case output to its DTO.
func ToRevenueTransactionListResponse(output *report.GetRevenueTransactionsOutput) RevenueTransactionListResponse {
	transactions := make([]RevenueTransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = toRevenueTransactionResponse(t)
	}
	return RevenueTransactionListResponse{
		Transactions:  transactions,
		Total:         len(transactions),
		FailedSources: output.FailedSources,
	}
}

func toRevenueTransactionResponse(t entity.RevenueTransaction) RevenueTransactionResponse {
	amount, _ := t.Amount.Float64()
	return RevenueTransactionResponse{
		Date:        t.Date.UTC().Format(time.RFC3339),
		Description: t.Description,
		Amount:      amount,
		Source:      string(t.Source),
	}
}

// OrderResponse represents an online order.
type OrderResponse struct {
	ID          string  `json:"id"`
	OrderDate   string  `json:"order_date"`
	Customer    string  `json:"customer"`
	TotalAmount float64 `json:"total_amount"`
	Shipping    float64 `json:"shipping"`
	Revenue     float64 `json:"revenue"`
}

// OrderListResponse represents the list-orders response.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// MarketResponse represents a market-day sale.
type MarketResponse struct {
	ID            string  `json:"id"`
	MarketDate    string  `json:"market_date"`
	Location      string  `json:"location"`
	FinalIncoming float64 `json:"final_incoming"`
}

// MarketListResponse represents the list-markets response.
type MarketListResponse struct {
	Markets []MarketResponse `json:"markets"`
	Total   int              `json:"total"`
}

// CourseResponse represents a paid course booking.
type CourseResponse struct {
	ID          string  `json:"id"`
	CourseDate  string  `json:"course_date"`
	Title       string  `json:"title"`
	TotalAmount float64 `json:"total_amount"`
}

// CourseListResponse represents the list-courses response.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

// ToOrderListResponse converts order entities to the list DTO.
func ToOrderListResponse(orders []*entity.Order) OrderListResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		totalAmount, _ := o.TotalAmount.Float64()
		shipping, _ := o.Shipping.Float64()
		revenue, _ := o.Revenue().Float64()
		out[i] = OrderResponse{
			ID:          o.ID.String(),
			OrderDate:   o.OrderDate.UTC().Format(time.RFC3339),
			Customer:    o.Customer,
			TotalAmount: totalAmount,
			Shipping:    shipping,
			Revenue:     revenue,
		}
	}
	return OrderListResponse{Orders: out, Total: len(out)}
}

// ToMarketListResponse converts market entities to the list DTO.
func ToMarketListResponse(markets []*entity.Market) MarketListResponse {
	out := make([]MarketResponse, len(markets))
	for i, m := range markets {
		finalIncoming, _ := m.FinalIncoming.Float64()
		out[i] = MarketResponse{
			ID:            m.ID.String(),
			MarketDate:    m.MarketDate.UTC().Format(time.RFC3339),
			Location:      m.Location,
			FinalIncoming: finalIncoming,
		}
	}
	return MarketListResponse{Markets: out, Total: len(out)}
}

// ToCourseListResponse converts course entities to the list DTO.
func ToCourseListResponse(courses []*entity.Course) CourseListResponse {
	out := make([]CourseResponse, len(courses))
	for i, c := range courses {
		totalAmount, _ := c.TotalAmount.Float64()
		out[i] = CourseResponse{
			ID:          c.ID.String(),
			CourseDate:  c.CourseDate.UTC().Format(time.RFC3339),
			Title:       c.Title,
			TotalAmount: totalAmount,
		}
	}
	return CourseListResponse{Courses: out, Total: len(out)}
}
