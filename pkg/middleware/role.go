package middleware

import (
	"net/http"

	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/pkg/apiErrors"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

// RoleMiddleware restricts a route to the given roles. An empty list admits any authenticated user.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, apiErrors.MessageUnauthorized, nil)
				return
			}

			if len(allowedRoles) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			for _, role := range allowedRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id": claims.Subject,
				"role":    claims.Role,
			}).Warn("Access denied")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, apiErrors.MessageForbidden, nil)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(nil)
}

// DashboardAccess guards the analytics routes: admins only when requireAdmin is set.
func DashboardAccess(requireAdmin bool) func(http.Handler) http.Handler {
	if requireAdmin {
		return AdminOnly()
	}
	return AllRoles()
}
