// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/analytics/internal/domain/error"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims CustomClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func claimsFor(userID string, tokenType string, expiresIn time.Duration) CustomClaims {
	now := time.Now().UTC()
	return CustomClaims{
		UserID:    userID,
		Email:     "user@example.com",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    TokenIssuer,
		},
	}
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	service := NewTokenService(testSecret)
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, claimsFor(userID.String(), TokenTypeAccess, time.Hour))
		claims, err := service.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("expected email user@example.com, got %s", claims.Email)
		}
	})

	t.Run("expired token reports expiry", func(t *testing.T) {
		token := signToken(t, testSecret, claimsFor(userID.String(), TokenTypeAccess, -time.Hour))
		_, err := service.ValidateAccessToken(context.Background(), token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{"wrong secret", signToken(t, "other", claimsFor(userID.String(), TokenTypeAccess, time.Hour)), domainerror.ErrInvalidToken},
		{"expired", signToken(t, testSecret, claimsFor(userID.String(), TokenTypeAccess, -time.Hour)), domainerror.ErrExpiredToken},
		{"refresh token", signToken(t, testSecret, claimsFor(userID.String(), "refresh", time.Hour)), domainerror.ErrInvalidToken},
		{"bad user id", signToken(t, testSecret, claimsFor("not-a-uuid", TokenTypeAccess, time.Hour)), domainerror.ErrInvalidToken},
		{"garbage", "not.a.token", domainerror.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateAccessToken(context.Background(), tt.token)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
