// Package auth contains authentication and session-state use cases.
package auth

import "testing"

func TestRoutingPolicy_Decide(t *testing.T) {
	policy := RoutingPolicy{
		ProtectedPrefix: "/dashboard",
		AuthPath:        "/auth",
	}

	tests := []struct {
		name          string
		path          string
		authenticated bool
		wantRedirect  bool
		wantTarget    string
	}{
		{
			name:          "protected path without session redirects to auth",
			path:          "/dashboard",
			authenticated: false,
			wantRedirect:  true,
			wantTarget:    "/auth",
		},
		{
			name:          "protected subpath without session redirects to auth",
			path:          "/dashboard/expenses",
			authenticated: false,
			wantRedirect:  true,
			wantTarget:    "/auth",
		},
		{
			name:          "protected path with session passes through",
			path:          "/dashboard",
			authenticated: true,
			wantRedirect:  false,
		},
		{
			name:          "auth path with session redirects to protected root",
			path:          "/auth",
			authenticated: true,
			wantRedirect:  true,
			wantTarget:    "/dashboard",
		},
		{
			name:          "auth path without session passes through",
			path:          "/auth",
			authenticated: false,
			wantRedirect:  false,
		},
		{
			name:          "unrelated path passes through signed out",
			path:          "/about",
			authenticated: false,
			wantRedirect:  false,
		},
		{
			name:          "unrelated path passes through signed in",
			path:          "/about",
			authenticated: true,
			wantRedirect:  false,
		},
		{
			name:          "prefix lookalike is not protected",
			path:          "/dashboarding",
			authenticated: false,
			wantRedirect:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Decide(tt.path, tt.authenticated)
			if got.Redirect != tt.wantRedirect {
				t.Errorf("expected redirect %v, got %v", tt.wantRedirect, got.Redirect)
			}
			if got.Redirect && got.Target != tt.wantTarget {
				t.Errorf("expected target %s, got %s", tt.wantTarget, got.Target)
			}
		})
	}
}

func TestRoutingPolicy_DecideIsIdempotent(t *testing.T) {
	policy := RoutingPolicy{
		ProtectedPrefix: "/dashboard",
		AuthPath:        "/auth",
	}

	// After following the redirect, re-evaluating at the target must not
	// produce another redirect in either direction.
	t.Run("signed out settles on auth path", func(t *testing.T) {
		first := policy.Decide("/dashboard", false)
		if !first.Redirect {
			t.Fatal("expected initial redirect")
		}
		second := policy.Decide(first.Target, false)
		if second.Redirect {
			t.Errorf("expected no redirect at %s, got redirect to %s", first.Target, second.Target)
		}
	})

	t.Run("signed in settles on protected root", func(t *testing.T) {
		first := policy.Decide("/auth", true)
		if !first.Redirect {
			t.Fatal("expected initial redirect")
		}
		second := policy.Decide(first.Target, true)
		if second.Redirect {
			t.Errorf("expected no redirect at %s, got redirect to %s", first.Target, second.Target)
		}
	})
}

func TestRoutingPolicy_IsGated(t *testing.T) {
	policy := RoutingPolicy{
		ProtectedPrefix: "/dashboard",
		AuthPath:        "/auth",
	}

	gated := []string{"/dashboard", "/dashboard/reports", "/auth"}
	for _, path := range gated {
		if !policy.IsGated(path) {
			t.Errorf("expected %s to be gated", path)
		}
	}

	open := []string{"/", "/about", "/auth/callback", "/dashboarding"}
	for _, path := range open {
		if policy.IsGated(path) {
			t.Errorf("expected %s to be open", path)
		}
	}
}
