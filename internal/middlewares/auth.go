package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oralvis/oralvis-server/internal/jwt"
	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the session token
// and, when roles are given, requires the token's role to be one of
// them. No roles means any authenticated account passes.
func AuthMiddleware(tokener Tokener, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusBadRequest, "Invalid token.")
				return
			}

			if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
				logger.Log.Errorw("role not allowed", "role", claims.Role)
				writeAuthError(w, http.StatusForbidden, "Forbidden: You do not have the required role.")
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

func roleAllowed(role models.Role, roles []models.Role) bool {
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// claimsKey is an unexported type for keys in context
type claimsKey struct{}

// setClaimsToContext stores verified claims in the context.
func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
// Returns nil if the request did not pass the auth middleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}
