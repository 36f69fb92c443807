package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// OrderRow mirrors the orders table.
type OrderRow struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	OrderDate   time.Time       `json:"order_date"`
	Customer    string          `json:"customer,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Shipping    decimal.Decimal `json:"shipping"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *OrderRow) ToEntity() *entity.Order {
	return &entity.Order{
		ID:          r.ID,
		UserID:      r.UserID,
		OrderDate:   r.OrderDate,
		Customer:    r.Customer,
		TotalAmount: r.TotalAmount,
		Shipping:    r.Shipping,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// MarketRow mirrors the markets table.
type MarketRow struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	MarketDate    time.Time       `json:"market_date"`
	Location      string          `json:"location,omitempty"`
	FinalIncoming decimal.Decimal `json:"final_incoming"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *MarketRow) ToEntity() *entity.Market {
	return &entity.Market{
		ID:            r.ID,
		UserID:        r.UserID,
		MarketDate:    r.MarketDate,
		Location:      r.Location,
		FinalIncoming: r.FinalIncoming,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// CourseRow mirrors the courses table.
type CourseRow struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	CourseDate  time.Time       `json:"course_date"`
	Title       string          `json:"title,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToEntity converts the row to a domain entity.
func (r *CourseRow) ToEntity() *entity.Course {
	return &entity.Course{
		ID:          r.ID,
		UserID:      r.UserID,
		CourseDate:  r.CourseDate,
		Title:       r.Title,
		TotalAmount: r.TotalAmount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
