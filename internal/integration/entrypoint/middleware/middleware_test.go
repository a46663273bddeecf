package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/analytics/internal/application/adapter"
	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
	"github.com/finance-tracker/analytics/internal/integration/entrypoint/dto"
)

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(engine *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		service    *stubTokenService
		header     string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			service:    &stubTokenService{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeMissingToken),
		},
		{
			name:       "wrong scheme",
			service:    &stubTokenService{},
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeInvalidToken),
		},
		{
			name:       "empty bearer token",
			service:    &stubTokenService{},
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeMissingToken),
		},
		{
			name:       "expired token",
			service:    &stubTokenService{err: domainerror.ErrExpiredToken},
			header:     "Bearer expired",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeExpiredToken),
		},
		{
			name:       "invalid token",
			service:    &stubTokenService{err: errors.New("bad signature")},
			header:     "Bearer forged",
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeInvalidToken),
		},
		{
			name:       "valid token",
			service:    &stubTokenService{claims: &adapter.TokenClaims{UserID: userID, Email: "a@b.c"}},
			header:     "Bearer good",
			wantStatus: http.StatusOK,
		},
		{
			name:       "lowercase scheme",
			service:    &stubTokenService{claims: &adapter.TokenClaims{UserID: userID}},
			header:     "bearer good",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/protected", NewAuthMiddleware(tt.service).Authenticate(), func(c *gin.Context) {
				id, ok := GetUserIDFromContext(c)
				if !ok || id != userID {
					t.Errorf("expected user %s in context, got %s", userID, id)
				}
				c.Status(http.StatusOK)
			})

			rec := performRequest(engine, tt.header)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantCode != "" {
				if body := decodeError(t, rec); body.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, body.Code)
				}
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(2, time.Minute)
	limiter.now = func() time.Time { return now }

	alice := uuid.New()
	bob := uuid.New()

	engine := gin.New()
	engine.GET("/protected", func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "alice":
			c.Set(string(UserIDKey), alice)
		case "bob":
			c.Set(string(UserIDKey), bob)
		}
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		if rec := performRequest(engine, "alice"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := performRequest(engine, "alice")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != string(domainerror.ErrCodeRateLimited) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateLimited, body.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("expected Retry-After 60, got %q", got)
	}

	t.Run("other users keep their own budget", func(t *testing.T) {
		if rec := performRequest(engine, "bob"); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("window reset", func(t *testing.T) {
		now = now.Add(time.Minute + time.Second)
		if rec := performRequest(engine, "alice"); rec.Code != http.StatusOK {
			t.Errorf("expected 200 after window, got %d", rec.Code)
		}
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		limiter.Cleanup()
		if len(limiter.entries) != 0 {
			t.Errorf("expected no entries, got %d", len(limiter.entries))
		}
	})
}

func TestRateLimiterSkipsInTestEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")

	limiter := NewRateLimiterWithConfig(1, time.Minute)
	engine := gin.New()
	engine.GET("/protected", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		if rec := performRequest(engine, ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}
