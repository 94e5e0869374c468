package middleware

import (
	"context"
	"net/http"

	"github.com/embryolab/backend/libs/auth"
	"github.com/embryolab/backend/libs/auth/service"
)

// RoleMiddleware validates the JWT access token and checks that the caller
// holds at least one of the required roles
func RoleMiddleware(tokenGenerator *service.TokenGenerator, requiredRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			// If no token found, return 401
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}

			// Validate token and extract the principal
			userID, roles, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid or expired token"}`))
				return
			}

			principal := auth.Principal{UserID: userID, Roles: roles}

			// Check that at least one required role is held
			allowed := false
			for _, role := range requiredRoles {
				if principal.HasRole(role) {
					allowed = true
					break
				}
			}
			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"insufficient permissions"}`))
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
