// Package error defines domain-specific errors for the Finance Pulse application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrNoSession is returned when no session could be resolved for a request.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCredentials is returned when login credentials are rejected by
	// the provider.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when an access token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when an access token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidAuthCode is returned when the callback authorization code
	// cannot be exchanged for a session.
	ErrInvalidAuthCode = errors.New("invalid or expired authorization code")

	// ErrSessionStateClosed is returned when an operation is attempted on a
	// session state that has already been torn down.
	ErrSessionStateClosed = errors.New("session state is closed")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010002"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010003"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"

	// Callback errors (03XXXX)
	ErrCodeInvalidAuthCode AuthErrorCode = "AUTH-030001"
	ErrCodeMissingAuthCode AuthErrorCode = "AUTH-030002"

	// Session errors (04XXXX)
	ErrCodeNoSession      AuthErrorCode = "AUTH-040001"
	ErrCodeSignOutFailed  AuthErrorCode = "AUTH-040002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
