package auth

import (
	"context"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// SignInInput represents the input for signing in with credentials.
type SignInInput struct {
	Email    string
	Password string
}

// SignInUseCase exchanges credentials for a provider session and installs it
// in the session state.
type SignInUseCase struct {
	provider adapter.SessionProvider
	state    *SessionState
}

// NewSignInUseCase creates a new SignInUseCase instance.
func NewSignInUseCase(provider adapter.SessionProvider, state *SessionState) *SignInUseCase {
	return &SignInUseCase{
		provider: provider,
		state:    state,
	}
}

// Execute signs the user in. Credential rejection surfaces as a coded
// authentication error; the caller decides the user-visible messaging.
func (uc *SignInUseCase) Execute(ctx context.Context, input SignInInput) (*entity.Session, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and password are required",
			nil,
		)
	}

	session, err := uc.provider.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid credentials",
			err,
		)
	}

	uc.state.SetSession(session)
	return session, nil
}
