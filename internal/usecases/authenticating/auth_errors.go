package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecret = errors.New("auth secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
)

// AuthError keeps the reason a token was rejected for logging
type AuthError struct {
	Err     error
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Details: details,
	}
}
