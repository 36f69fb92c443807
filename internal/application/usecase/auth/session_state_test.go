package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/domain/entity"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
)

// fakeProvider implements adapter.SessionProvider for tests.
type fakeProvider struct {
	mu sync.Mutex

	session    *entity.Session
	getErr     error
	refreshErr error
	signOutErr error

	getCalls     int
	refreshCalls int
	signOutCalls int
}

func (p *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.session, nil
}

func (p *fakeProvider) ExchangeCode(ctx context.Context, code, verifier string) (*entity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.session, nil
}

func (p *fakeProvider) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshCalls++
	if p.refreshErr != nil {
		return nil, p.refreshErr
	}
	return p.session, nil
}

func (p *fakeProvider) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.getCalls++
	if p.getErr != nil {
		return nil, p.getErr
	}
	if p.session == nil {
		return nil, domainerror.ErrNoSession
	}
	return p.session, nil
}

func (p *fakeProvider) getSessionCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.getCalls
}

func (p *fakeProvider) SignOut(ctx context.Context, accessToken string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.signOutCalls++
	return p.signOutErr
}

// fakeNavigator records replace-navigations.
type fakeNavigator struct {
	mu       sync.Mutex
	path     string
	replaces []string
}

func (n *fakeNavigator) Replace(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
	n.replaces = append(n.replaces, path)
}

func (n *fakeNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *fakeNavigator) replaceCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.replaces)
}

func testSession() *entity.Session {
	return &entity.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		IssuedAt:     time.Now().UTC(),
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
		User: entity.User{
			ID:    uuid.New(),
			Email: "user@example.com",
		},
	}
}

func testPolicy() RoutingPolicy {
	return RoutingPolicy{ProtectedPrefix: "/dashboard", AuthPath: "/auth"}
}

func TestSessionState_StartWithoutToken(t *testing.T) {
	provider := &fakeProvider{}
	nav := &fakeNavigator{path: "/dashboard"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "")
	defer state.Close()

	// No session, so the protected location must be replaced with the auth path.
	if nav.CurrentPath() != "/auth" {
		t.Errorf("expected navigation to /auth, got %s", nav.CurrentPath())
	}
}

func TestSessionState_StartWithValidToken(t *testing.T) {
	provider := &fakeProvider{session: testSession()}
	nav := &fakeNavigator{path: "/auth"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "access-token")
	defer state.Close()

	// Authenticated users on the auth page are sent into the protected area.
	if nav.CurrentPath() != "/dashboard" {
		t.Errorf("expected navigation to /dashboard, got %s", nav.CurrentPath())
	}

	session, user := state.GetCurrentSession(context.Background())
	if session == nil || user == nil {
		t.Fatal("expected a current session and user")
	}
	if user.Email != "user@example.com" {
		t.Errorf("expected user email user@example.com, got %s", user.Email)
	}
}

func TestSessionState_StartWithFailingProvider(t *testing.T) {
	provider := &fakeProvider{getErr: errors.New("provider unreachable")}
	nav := &fakeNavigator{path: "/dashboard"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	// A provider failure during startup resolves as signed out, not a crash.
	state.Start(context.Background(), "stale-token")
	defer state.Close()

	if nav.CurrentPath() != "/auth" {
		t.Errorf("expected signed-out navigation to /auth, got %s", nav.CurrentPath())
	}
}

func TestSessionState_GetCurrentSessionFailsClosed(t *testing.T) {
	provider := &fakeProvider{session: testSession()}
	nav := &fakeNavigator{path: "/dashboard"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "access-token")
	defer state.Close()

	// Once the provider stops validating the token, the session resolves to
	// nil and the user is routed out of the protected area.
	provider.mu.Lock()
	provider.getErr = errors.New("validation failed")
	provider.mu.Unlock()

	session, user := state.GetCurrentSession(context.Background())
	if session != nil || user != nil {
		t.Error("expected nil session and user after validation failure")
	}
	if nav.CurrentPath() != "/auth" {
		t.Errorf("expected navigation to /auth, got %s", nav.CurrentPath())
	}
}

func TestSessionState_GetCurrentSessionExpired(t *testing.T) {
	provider := &fakeProvider{session: testSession()}
	nav := &fakeNavigator{path: "/dashboard"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "")
	defer state.Close()

	expired := testSession()
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	state.SetSession(expired)

	session, user := state.GetCurrentSession(context.Background())
	if session != nil || user != nil {
		t.Error("expected nil session and user for an expired session")
	}
	if calls := provider.getSessionCalls(); calls != 0 {
		t.Errorf("expected no provider lookups for an expired session, got %d", calls)
	}
	if nav.CurrentPath() != "/auth" {
		t.Errorf("expected navigation to /auth, got %s", nav.CurrentPath())
	}
}

func TestSessionState_OnSessionChange(t *testing.T) {
	provider := &fakeProvider{}
	nav := &fakeNavigator{path: "/auth"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "")
	defer state.Close()

	var mu sync.Mutex
	var events []*entity.Session
	state.OnSessionChange(func(session *entity.Session) {
		mu.Lock()
		events = append(events, session)
		mu.Unlock()
	})

	installed := testSession()
	provider.mu.Lock()
	provider.session = installed
	provider.mu.Unlock()

	state.SetSession(installed)

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(events))
	}
	if events[0] == nil || events[0].AccessToken != "access-token" {
		t.Error("expected the installed session in the change event")
	}
}

func TestSessionState_SignOut(t *testing.T) {
	t.Run("clears session and navigates to auth", func(t *testing.T) {
		provider := &fakeProvider{session: testSession()}
		nav := &fakeNavigator{path: "/auth"}
		state := NewSessionState(provider, nav, testPolicy(), time.Hour)

		state.Start(context.Background(), "access-token")
		defer state.Close()

		var mu sync.Mutex
		var events []*entity.Session
		state.OnSessionChange(func(session *entity.Session) {
			mu.Lock()
			events = append(events, session)
			mu.Unlock()
		})

		if err := state.SignOut(context.Background()); err != nil {
			t.Fatalf("expected sign-out to succeed, got %v", err)
		}

		if provider.signOutCalls != 1 {
			t.Errorf("expected 1 provider sign-out call, got %d", provider.signOutCalls)
		}
		if nav.CurrentPath() != "/auth" {
			t.Errorf("expected navigation to /auth, got %s", nav.CurrentPath())
		}

		mu.Lock()
		defer mu.Unlock()
		if len(events) != 1 || events[0] != nil {
			t.Error("expected a single nil-session change event")
		}
	})

	t.Run("revocation failure still clears and navigates", func(t *testing.T) {
		provider := &fakeProvider{
			session:    testSession(),
			signOutErr: errors.New("revocation failed"),
		}
		nav := &fakeNavigator{path: "/dashboard"}
		state := NewSessionState(provider, nav, testPolicy(), time.Hour)

		state.Start(context.Background(), "access-token")
		defer state.Close()

		err := state.SignOut(context.Background())
		if err == nil {
			t.Fatal("expected an error from failed revocation")
		}
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeSignOutFailed {
			t.Errorf("expected sign-out-failed code, got %v", err)
		}

		// The local copy is gone and the user ended up on the auth page.
		provider.mu.Lock()
		provider.session = nil
		provider.mu.Unlock()
		session, _ := state.GetCurrentSession(context.Background())
		if session != nil {
			t.Error("expected no session after failed revocation")
		}
		if nav.CurrentPath() != "/auth" {
			t.Errorf("expected navigation to /auth, got %s", nav.CurrentPath())
		}
	})

	t.Run("closed state rejects sign-out", func(t *testing.T) {
		provider := &fakeProvider{}
		nav := &fakeNavigator{path: "/auth"}
		state := NewSessionState(provider, nav, testPolicy(), time.Hour)

		state.Start(context.Background(), "")
		state.Close()

		if err := state.SignOut(context.Background()); !errors.Is(err, domainerror.ErrSessionStateClosed) {
			t.Errorf("expected ErrSessionStateClosed, got %v", err)
		}
	})
}

func TestSessionState_RefreshFailureSignsOut(t *testing.T) {
	provider := &fakeProvider{
		session:    testSession(),
		refreshErr: errors.New("refresh rejected"),
	}
	nav := &fakeNavigator{path: "/dashboard"}
	state := NewSessionState(provider, nav, testPolicy(), 10*time.Millisecond)

	state.Start(context.Background(), "access-token")
	defer state.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if nav.CurrentPath() == "/auth" {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("expected refresh failure to navigate to /auth")
}

func TestSessionState_CloseIsIdempotent(t *testing.T) {
	provider := &fakeProvider{}
	nav := &fakeNavigator{path: "/auth"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "")
	state.Close()
	state.Close()

	// Subscribing after close must be a no-op.
	called := false
	state.OnSessionChange(func(*entity.Session) { called = true })
	state.SetSession(testSession())
	if called {
		t.Error("expected no notifications after close")
	}
}

func TestSessionState_PolicyAppliedOnlyWhenNeeded(t *testing.T) {
	provider := &fakeProvider{}
	nav := &fakeNavigator{path: "/about"}
	state := NewSessionState(provider, nav, testPolicy(), time.Hour)

	state.Start(context.Background(), "")
	defer state.Close()

	// An ungated location never triggers navigation, signed in or out.
	if nav.replaceCount() != 0 {
		t.Errorf("expected no replaces on an open path, got %d", nav.replaceCount())
	}

	state.SetSession(testSession())
	if nav.replaceCount() != 0 {
		t.Errorf("expected no replaces after sign-in on an open path, got %d", nav.replaceCount())
	}
}
