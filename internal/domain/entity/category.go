package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents an expense category. Categories are read-only from the
// application's perspective; their lifecycle is owned by the data store.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
