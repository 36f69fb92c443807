// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/config"
	"github.com/finance-pulse/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	signInUseCase       *auth.SignInUseCase
	exchangeCodeUseCase *auth.ExchangeCodeUseCase
	sessionState        *auth.SessionState
	cfg                 *config.Config
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	signInUseCase *auth.SignInUseCase,
	exchangeCodeUseCase *auth.ExchangeCodeUseCase,
	sessionState *auth.SessionState,
	cfg *config.Config,
) *AuthController {
	return &AuthController{
		signInUseCase:       signInUseCase,
		exchangeCodeUseCase: exchangeCodeUseCase,
		sessionState:        sessionState,
		cfg:                 cfg,
	}
}

// Login handles POST /api/v1/auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	session, err := c.signInUseCase.Execute(ctx.Request.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	c.setSessionCookies(ctx, session.AccessToken, session.RefreshToken)
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Logout handles POST /api/v1/auth/logout requests. The local session is
// always cleared; a provider-side revocation failure does not keep the user
// signed in.
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.sessionState.SignOut(ctx.Request.Context()); err != nil {
		if errors.Is(err, domainerror.ErrSessionStateClosed) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Session service is shutting down",
			})
			return
		}
	}

	c.clearSessionCookies(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully signed out",
	})
}

// Session handles GET /api/v1/auth/session requests.
func (c *AuthController) Session(ctx *gin.Context) {
	session, _ := c.sessionState.GetCurrentSession(ctx.Request.Context())
	if session == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No active session",
			Code:  string(domainerror.ErrCodeNoSession),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Callback handles GET /auth/callback requests. It exchanges the provider's
// authorization code for a session and navigates into the protected area; on
// any failure it redirects back to the auth page with an error parameter.
func (c *AuthController) Callback(ctx *gin.Context) {
	code := ctx.Query("code")
	verifier, _ := ctx.Cookie(c.cfg.Supabase.VerifierCookie)

	session, err := c.exchangeCodeUseCase.Execute(ctx.Request.Context(), code, verifier)
	if err != nil {
		target := c.cfg.Routes.AuthPath + "?error=" + url.QueryEscape(errorQueryValue(err))
		ctx.Redirect(http.StatusSeeOther, target)
		return
	}

	ctx.SetCookie(c.cfg.Supabase.VerifierCookie, "", -1, "/", "", false, true)
	c.setSessionCookies(ctx, session.AccessToken, session.RefreshToken)
	ctx.Redirect(http.StatusSeeOther, c.cfg.Routes.ProtectedPrefix)
}

func (c *AuthController) setSessionCookies(ctx *gin.Context, accessToken, refreshToken string) {
	maxAge := int(c.cfg.Supabase.RefreshInterval.Seconds()) * 2
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cfg.Supabase.SessionCookie, accessToken, maxAge, "/", "", false, true)
	if refreshToken != "" {
		ctx.SetCookie(c.cfg.Supabase.RefreshCookie, refreshToken, maxAge, "/", "", false, true)
	}
}

func (c *AuthController) clearSessionCookies(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cfg.Supabase.SessionCookie, "", -1, "/", "", false, true)
	ctx.SetCookie(c.cfg.Supabase.RefreshCookie, "", -1, "/", "", false, true)
}

// handleAuthError maps authentication errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeMissingAuthCode:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidAuthCode,
		domainerror.ErrCodeNoSession:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func errorQueryValue(err error) string {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == domainerror.ErrCodeMissingAuthCode {
			return "missing_code"
		}
		return "invalid_code"
	}
	return "auth_failed"
}
