package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
)

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestValidateToken(t *testing.T) {
	secret := "test-secret"
	service := NewService(config.Auth{Secret: secret, Issuer: "https://auth.example.com"})

	validClaims := func() *domain.Claims {
		return &domain.Claims{
			Email: "owner@example.com",
			Role:  domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user_123",
				Issuer:    "https://auth.example.com",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		expectedErr error
		validate    func(t *testing.T, claims *domain.Claims)
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims())
			},
			validate: func(t *testing.T, claims *domain.Claims) {
				assert.Equal(t, "user_123", claims.Subject)
				assert.Equal(t, "owner@example.com", claims.Email)
				assert.Equal(t, domain.RoleAdmin, claims.Role)
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims)
			},
			expectedErr: ErrExpiredToken,
		},
		{
			name: "expiry within clock skew is accepted",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Second))
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims)
			},
			validate: func(t *testing.T, claims *domain.Claims) {
				assert.Equal(t, "user_123", claims.Subject)
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims())
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Issuer = "https://evil.example.com"
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				claims := validClaims()
				claims.Subject = ""
				return sign(t, jwt.SigningMethodHS256, []byte(secret), claims)
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			tt.validate(t, claims)
		})
	}
}

func TestValidateTokenWithoutSecret(t *testing.T) {
	service := NewService(config.Auth{})

	_, err := service.ValidateToken("anything")

	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueTokenRoundTrip(t *testing.T) {
	service := NewService(config.Auth{Secret: "s3cret"})

	token, err := service.IssueToken("seed-admin", "admin@example.com", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "seed-admin", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
