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

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	client *supabase.Client
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(client *supabase.Client) adapter.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

// FindByID retrieves the profile with the given user ID.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	data, _, err := r.client.From("profiles").
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var rows []model.ProfileRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, domainerror.ErrProfileNotFound
	}
	return rows[0].ToEntity(), nil
}

// Update applies display-name edits from the profile view.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	row := model.ProfileFromEntity(profile)
	_, _, err := r.client.From("profiles").
		Update(row, "", "").
		Eq("id", profile.ID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
