package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-pulse/backend/internal/application/adapter"
	domainerror "github.com/finance-pulse/backend/internal/domain/error"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/dto"
)

// fakeTokenService implements adapter.TokenService.
type fakeTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func authRouter(service *fakeTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/protected", NewAuthMiddleware(service).Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID.String())
	})
	return engine
}

func getProtected(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse error body: %v", err)
	}
	return body.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	valid := &fakeTokenService{claims: &adapter.TokenClaims{UserID: userID, Email: "user@example.com"}}

	t.Run("valid bearer token passes and exposes the user", func(t *testing.T) {
		rec := getProtected(authRouter(valid), "Bearer good-token")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != userID.String() {
			t.Errorf("expected user ID %s in context, got %s", userID, rec.Body.String())
		}
	})

	t.Run("missing header yields 401", func(t *testing.T) {
		rec := getProtected(authRouter(valid), "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != string(domainerror.ErrCodeMissingToken) {
			t.Errorf("expected missing-token code, got %s", code)
		}
	})

	t.Run("non-bearer header yields 401", func(t *testing.T) {
		rec := getProtected(authRouter(valid), "Basic dXNlcjpwYXNz")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired token yields the expired code", func(t *testing.T) {
		expired := &fakeTokenService{err: domainerror.ErrExpiredToken}
		rec := getProtected(authRouter(expired), "Bearer stale")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != string(domainerror.ErrCodeExpiredToken) {
			t.Errorf("expected expired-token code, got %s", code)
		}
	})

	t.Run("invalid token yields the invalid code", func(t *testing.T) {
		invalid := &fakeTokenService{err: domainerror.ErrInvalidToken}
		rec := getProtected(authRouter(invalid), "Bearer forged")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != string(domainerror.ErrCodeInvalidToken) {
			t.Errorf("expected invalid-token code, got %s", code)
		}
	})
}
