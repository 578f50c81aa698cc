package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	dashdomain "github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const AuthenticatedUserContextKey = ContextKey("authenticatedUser")

// AuthenticatedUser is the tenant resolved from a validated bearer token.
type AuthenticatedUser struct {
	User *dashdomain.User
}

// UserFromContext returns the authenticated tenant, if any.
func UserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	u, ok := ctx.Value(AuthenticatedUserContextKey).(*AuthenticatedUser)
	return u, ok
}

// Auth validates the Bearer token minted by the identity layer (HS256) and
// resolves the subject claim to a local user record. Session handling itself
// is the identity provider's job; this middleware only maps token -> tenant.
func Auth(secret string, users repository.UserRepository, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "authorization header missing")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.WarnContext(r.Context(), "invalid authorization header format")
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.WarnContext(r.Context(), "token validation failed", "error", err)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}
			subject, _ := claims["sub"].(string)
			if subject == "" {
				http.Error(w, "Token missing subject", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByAuth0ID(r.Context(), subject)
			if err != nil {
				if errors.Is(err, dashdomain.ErrNotFound) {
					logger.WarnContext(r.Context(), "token subject has no local account", "subject", subject)
					http.Error(w, "User not registered", http.StatusUnauthorized)
					return
				}
				logger.ErrorContext(r.Context(), "failed to resolve authenticated user", "error", err)
				http.Error(w, "Failed to resolve user", http.StatusInternalServerError)
				return
			}
			if !user.IsActive {
				http.Error(w, "User account inactive", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), AuthenticatedUserContextKey, &AuthenticatedUser{User: user})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
