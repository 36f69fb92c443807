package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
)

// UpdateProfileInput represents the editable profile fields.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	DisplayName string
}

// UpdateProfileUseCase applies edits from the profile view.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute updates the display name and returns the refreshed profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.Profile, error) {
	existing, err := uc.profileRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	existing.DisplayName = input.DisplayName
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return existing, nil
}
