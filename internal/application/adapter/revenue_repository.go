package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/domain/entity"
)

// DateRange bounds a revenue read. Nil ends leave the range open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// RevenueRepository defines read access to the three revenue-bearing tables.
// Each read is a column-filtered, optionally date-ranged, single-table select
// with server-side ordering by date descending.
type RevenueRepository interface {
	// FindOrders retrieves orders for the user within the range.
	FindOrders(ctx context.Context, userID uuid.UUID, dateRange DateRange) ([]*entity.Order, error)

	// FindMarkets retrieves market sales for the user within the range.
	FindMarkets(ctx context.Context, userID uuid.UUID, dateRange DateRange) ([]*entity.Market, error)

	// FindCourses retrieves course bookings for the user within the range.
	FindCourses(ctx context.Context, userID uuid.UUID, dateRange DateRange) ([]*entity.Course, error)
}

// ProfileRepository defines access to the profiles table.
type ProfileRepository interface {
	// FindByID retrieves the profile with the given user ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Update applies display-name edits from the profile view.
	Update(ctx context.Context, profile *entity.Profile) error
}
