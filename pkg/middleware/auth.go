package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/internal/usecases/authenticating"
	"github.com/jasonco/storefront-analytics/pkg/apiErrors"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware rejects requests without a valid bearer token before any handler runs.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Debug("Request without bearer token")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, apiErrors.MessageUnauthorized, nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logger.WithError(err).Warn("Rejected bearer token")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, apiErrors.MessageUnauthorized, nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token of an Authorization header. The scheme is case insensitive.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	return fields[1], true
}

// ClaimsFromContext returns the claims stored by AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
