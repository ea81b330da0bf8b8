package authenticating

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// clockSkew tolerated between the identity provider and this service
const clockSkew = 10 * time.Second

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service verifies HS256 session tokens issued by the identity provider.
type Service struct {
	secret []byte
	issuer string
}

func NewService(cfg config.Auth) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, "missing subject")
	}

	return claims, nil
}

// IssueToken signs claims with the shared secret. Used by local tooling to mint dashboard tokens.
func (s *Service) IssueToken(subject, email, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &domain.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
