package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	"github.com/finance-pulse/backend/internal/integration/persistence/model"
)

// revenueRepository implements the adapter.RevenueRepository interface over
// the three revenue-bearing tables, which share a query shape but not a row
// shape.
type revenueRepository struct {
	client *supabase.Client
}

// NewRevenueRepository creates a new revenue repository instance.
func NewRevenueRepository(client *supabase.Client) adapter.RevenueRepository {
	return &revenueRepository{
		client: client,
	}
}

// FindOrders retrieves orders for the user within the range, newest first.
func (r *revenueRepository) FindOrders(ctx context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Order, error) {
	data, err := r.query("orders", "order_date", userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var rows []model.OrderRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse orders: %w", err)
	}

	orders := make([]*entity.Order, len(rows))
	for i := range rows {
		orders[i] = rows[i].ToEntity()
	}
	return orders, nil
}

// FindMarkets retrieves market sales for the user within the range, newest first.
func (r *revenueRepository) FindMarkets(ctx context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Market, error) {
	data, err := r.query("markets", "market_date", userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list markets: %w", err)
	}

	var rows []model.MarketRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse markets: %w", err)
	}

	markets := make([]*entity.Market, len(rows))
	for i := range rows {
		markets[i] = rows[i].ToEntity()
	}
	return markets, nil
}

// FindCourses retrieves course bookings for the user within the range, newest first.
func (r *revenueRepository) FindCourses(ctx context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Course, error) {
	data, err := r.query("courses", "course_date", userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	var rows []model.CourseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse courses: %w", err)
	}

	courses := make([]*entity.Course, len(rows))
	for i := range rows {
		courses[i] = rows[i].ToEntity()
	}
	return courses, nil
}

// query builds the shared select: user filter, optional date range, ordered
// by the table's date column descending.
func (r *revenueRepository) query(table, dateColumn string, userID uuid.UUID, dateRange adapter.DateRange) ([]byte, error) {
	q := r.client.From(table).
		Select("*", "", false).
		Eq("user_id", userID.String())

	q = applyDateRange(q, dateColumn, dateRange)

	data, _, err := q.Order(dateColumn+".desc", nil).Execute()
	return data, err
}

func applyDateRange(q *postgrest.FilterBuilder, column string, dateRange adapter.DateRange) *postgrest.FilterBuilder {
	if dateRange.Start != nil {
		q = q.Gte(column, dateRange.Start.Format(time.RFC3339))
	}
	if dateRange.End != nil {
		q = q.Lte(column, dateRange.End.Format(time.RFC3339))
	}
	return q
}
