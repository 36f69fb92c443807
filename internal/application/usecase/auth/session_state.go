package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-pulse/backend/internal/application/adapter"
	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// SessionChangeFunc is invoked for every sign-in, sign-out, or token-refresh
// event. The session is nil when the user is signed out.
type SessionChangeFunc func(session *entity.Session)

// SessionState is the process-wide reactive copy of the externally-managed
// session. Its lifecycle is init -> subscribed -> (updates)* -> unsubscribed:
// Start begins the refresh loop and applies the routing policy once, every
// update re-applies it, and Close tears the loop down. The provider remains
// the only source of truth; SessionState is the only writer of the in-memory
// copy.
type SessionState struct {
	provider adapter.SessionProvider
	nav      adapter.Navigator
	policy   RoutingPolicy

	refreshInterval time.Duration

	mu          sync.RWMutex
	session     *entity.Session
	subscribers []SessionChangeFunc
	closed      bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionState creates a session state bound to the given provider and
// navigator. Nothing runs until Start is called.
func NewSessionState(
	provider adapter.SessionProvider,
	nav adapter.Navigator,
	policy RoutingPolicy,
	refreshInterval time.Duration,
) *SessionState {
	return &SessionState{
		provider:        provider,
		nav:             nav,
		policy:          policy,
		refreshInterval: refreshInterval,
		done:            make(chan struct{}),
	}
}

// Start performs the initial session retrieval, applies the routing policy,
// and launches the automatic refresh loop. A provider error during the
// initial retrieval is logged and treated as "no session"; Start never
// blocks on an auth failure.
func (s *SessionState) Start(ctx context.Context, accessToken string) {
	if accessToken != "" {
		session, err := s.provider.GetSession(ctx, accessToken)
		if err != nil {
			slog.Warn("initial session retrieval failed, treating as signed out", "error", err)
		} else {
			s.setSession(session)
		}
	}

	s.applyPolicy()

	loopCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.refreshLoop(loopCtx)
}

// Close stops the refresh loop and drops all subscribers. After Close the
// state no longer reacts to anything.
func (s *SessionState) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel := s.cancel
	s.subscribers = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-s.done
	}
}

// GetCurrentSession returns the current session and user, or nil for both.
// An expired session is cleared without consulting the provider. It never
// returns an error: any provider failure while re-validating is logged and
// resolved as "no session", the conservative default.
func (s *SessionState) GetCurrentSession(ctx context.Context) (*entity.Session, *entity.User) {
	s.mu.RLock()
	current := s.session
	s.mu.RUnlock()

	if current == nil {
		return nil, nil
	}

	if current.IsExpired(time.Now().UTC()) {
		slog.Warn("session expired, treating as signed out")
		s.update(nil)
		return nil, nil
	}

	session, err := s.provider.GetSession(ctx, current.AccessToken)
	if err != nil {
		slog.Warn("session validation failed, treating as signed out", "error", err)
		s.update(nil)
		return nil, nil
	}
	return session, &session.User
}

// OnSessionChange registers a subscriber invoked for every session change.
// Registration after Close is a no-op.
func (s *SessionState) OnSessionChange(fn SessionChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.subscribers = append(s.subscribers, fn)
}

// SetSession installs a freshly-issued session (sign-in or code exchange),
// notifies subscribers, and re-applies the routing policy.
func (s *SessionState) SetSession(session *entity.Session) {
	s.update(session)
}

// SignOut invalidates the remote session, clears the in-memory copy, and
// forces navigation to the public auth entry point. A revocation failure is
// logged but navigation still happens; the local copy is cleared regardless
// so the client is never stranded signed-in.
func (s *SessionState) SignOut(ctx context.Context) error {
	s.mu.RLock()
	current := s.session
	closed := s.closed
	s.mu.RUnlock()

	if closed {
		return domainerror.ErrSessionStateClosed
	}

	var signOutErr error
	if current != nil {
		if err := s.provider.SignOut(ctx, current.AccessToken); err != nil {
			slog.Error("remote sign-out failed, navigating anyway", "error", err)
			signOutErr = domainerror.NewAuthError(
				domainerror.ErrCodeSignOutFailed,
				"failed to revoke remote session",
				err,
			)
		}
	}

	s.clearAndNotify()
	s.nav.Replace(s.policy.AuthPath)
	return signOutErr
}

// refreshLoop periodically refreshes the session so it never silently
// expires. Refresh failures are treated as sign-out (fail-closed).
func (s *SessionState) refreshLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *SessionState) refresh(ctx context.Context) {
	s.mu.RLock()
	current := s.session
	s.mu.RUnlock()

	if current == nil {
		return
	}

	session, err := s.provider.Refresh(ctx, current.RefreshToken)
	if ctx.Err() != nil {
		// The loop was torn down mid-flight; a late result must not mutate state.
		return
	}
	if err != nil {
		slog.Warn("session refresh failed, signing out", "error", err)
		s.update(nil)
		return
	}
	s.update(session)
}

// update installs the session, notifies subscribers, and re-evaluates the
// routing policy, which must run on every change event.
func (s *SessionState) update(session *entity.Session) {
	s.setSession(session)
	s.notify(session)
	s.applyPolicy()
}

func (s *SessionState) setSession(session *entity.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *SessionState) clearAndNotify() {
	s.setSession(nil)
	s.notify(nil)
}

func (s *SessionState) notify(session *entity.Session) {
	s.mu.RLock()
	subs := make([]SessionChangeFunc, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(session)
	}
}

func (s *SessionState) applyPolicy() {
	s.mu.RLock()
	authenticated := s.session != nil
	s.mu.RUnlock()

	decision := s.policy.Decide(s.nav.CurrentPath(), authenticated)
	if decision.Redirect {
		s.nav.Replace(decision.Target)
	}
}
