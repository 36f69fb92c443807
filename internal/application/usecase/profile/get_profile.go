// Package profile contains user-profile use cases.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
)

// GetProfileUseCase reads the signed-in user's profile.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute returns the profile for the given user ID. The row is created by a
// provider trigger on first sign-in, so a missing profile is an error here.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	found, err := uc.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return found, nil
}
