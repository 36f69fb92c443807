// Package error defines domain-specific errors for the Finance Pulse application.
package error

import "errors"

// Configuration errors.
var (
	// ErrProviderNotConfigured is returned when the hosted provider URL or
	// anon key is missing. It blocks data loads but not navigation.
	ErrProviderNotConfigured = errors.New("supabase url and anon key must be configured")
)

// Profile errors.
var (
	// ErrProfileNotFound is returned when no profile row exists for the user.
	// The row is normally created by a provider trigger on first sign-in.
	ErrProfileNotFound = errors.New("profile not found")
)

// ConfigErrorCode defines error codes for configuration errors.
type ConfigErrorCode string

const (
	ErrCodeProviderNotConfigured ConfigErrorCode = "CFG-010001"
)
