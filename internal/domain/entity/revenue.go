package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueSource identifies which collection a revenue transaction came from.
type RevenueSource string

// Source values use the collection names so they line up with the
// failed_sources entries the dashboard reports.
const (
	RevenueSourceOrder  RevenueSource = "orders"
	RevenueSourceMarket RevenueSource = "markets"
	RevenueSourceCourse RevenueSource = "courses"
)

// Order represents an online order. Its revenue contribution is the total
// amount plus shipping.
type Order struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrderDate   time.Time
	Customer    string
	TotalAmount decimal.Decimal
	Shipping    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Market represents a market-day sale. Its revenue contribution is the final
// incoming amount after fees.
type Market struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MarketDate    time.Time
	Location      string
	FinalIncoming decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Course represents a paid course booking.
type Course struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourseDate  time.Time
	Title       string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RevenueTransaction is the normalized shape shared by all revenue sources
// for display and aggregation.
type RevenueTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Source      RevenueSource
}

// Revenue returns the order's contribution to revenue.
func (o *Order) Revenue() decimal.Decimal {
	return o.TotalAmount.Add(o.Shipping)
}

// Normalize converts the order into the common revenue transaction shape.
func (o *Order) Normalize() RevenueTransaction {
	return RevenueTransaction{
		Date:        o.OrderDate,
		Description: o.Customer,
		Amount:      o.Revenue(),
		Source:      RevenueSourceOrder,
	}
}

// Normalize converts the market sale into the common revenue transaction shape.
func (m *Market) Normalize() RevenueTransaction {
	return RevenueTransaction{
		Date:        m.MarketDate,
		Description: m.Location,
		Amount:      m.FinalIncoming,
		Source:      RevenueSourceMarket,
	}
}

// Normalize converts the course booking into the common revenue transaction shape.
func (c *Course) Normalize() RevenueTransaction {
	return RevenueTransaction{
		Date:        c.CourseDate,
		Description: c.Title,
		Amount:      c.TotalAmount,
		Source:      RevenueSourceCourse,
	}
}
