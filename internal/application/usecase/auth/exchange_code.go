package auth

import (
	"context"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// ExchangeCodeUseCase exchanges the short-lived authorization code delivered
// to the callback path for a full session.
type ExchangeCodeUseCase struct {
	provider adapter.SessionProvider
	state    *SessionState
}

// NewExchangeCodeUseCase creates a new ExchangeCodeUseCase instance.
func NewExchangeCodeUseCase(provider adapter.SessionProvider, state *SessionState) *ExchangeCodeUseCase {
	return &ExchangeCodeUseCase{
		provider: provider,
		state:    state,
	}
}

// Execute performs the exchange. On success the session is installed in the
// session state; on failure a coded error is returned so the callback handler
// can redirect back to the auth page with an error query parameter.
func (uc *ExchangeCodeUseCase) Execute(ctx context.Context, code, verifier string) (*entity.Session, error) {
	if code == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthCode,
			"authorization code is required",
			nil,
		)
	}

	session, err := uc.provider.ExchangeCode(ctx, code, verifier)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidAuthCode,
			"failed to exchange authorization code",
			err,
		)
	}

	uc.state.SetSession(session)
	return session, nil
}
