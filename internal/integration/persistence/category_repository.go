package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
// Categories are read-only from this application's perspective.
type categoryRepository struct {
	client *supabase.Client
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(client *supabase.Client) adapter.CategoryRepository {
	return &categoryRepository{
		client: client,
	}
}

// FindAll retrieves all categories ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Order("name.asc", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var rows []model.CategoryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}

	categories := make([]*entity.Category, len(rows))
	for i := range rows {
		categories[i] = rows[i].ToEntity()
	}
	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	data, _, err := r.client.From("categories").
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	var rows []model.CategoryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	if len(rows) == 0 {
		return nil, domainerror.ErrCategoryNotFound
	}
	return rows[0].ToEntity(), nil
}
