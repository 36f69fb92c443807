// Package auth contains authentication and session-state use cases.
package auth

import "strings"

// RoutingPolicy decides where a user should be sent given their current path
// and whether a session exists. It is pure and idempotent: the desired
// location is recomputed from state every time, so applying it twice never
// produces a second redirect and no loop-prevention flags are needed.
type RoutingPolicy struct {
	// ProtectedPrefix is the root of the authenticated area (e.g. "/dashboard").
	ProtectedPrefix string
	// AuthPath is the public auth entry point (e.g. "/auth").
	AuthPath string
}

// RouteDecision is the outcome of evaluating the policy.
type RouteDecision struct {
	// Redirect indicates a replace-navigation must happen.
	Redirect bool
	// Target is the path to navigate to when Redirect is true.
	Target string
}

// Decide evaluates the routing policy for the given path and session state.
//
//	protected path, no session  -> redirect to the auth path
//	protected path, session     -> pass through
//	auth path, session          -> redirect to the protected root
//	auth path, no session       -> pass through
//	anything else               -> pass through
func (p RoutingPolicy) Decide(path string, authenticated bool) RouteDecision {
	switch {
	case p.isProtected(path) && !authenticated:
		return RouteDecision{Redirect: true, Target: p.AuthPath}
	case path == p.AuthPath && authenticated:
		return RouteDecision{Redirect: true, Target: p.ProtectedPrefix}
	default:
		return RouteDecision{}
	}
}

// IsGated reports whether the policy applies to the path at all. Paths
// outside the declared set always pass through unchanged.
func (p RoutingPolicy) IsGated(path string) bool {
	return p.isProtected(path) || path == p.AuthPath
}

func (p RoutingPolicy) isProtected(path string) bool {
	return path == p.ProtectedPrefix || strings.HasPrefix(path, p.ProtectedPrefix+"/")
}
