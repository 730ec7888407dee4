package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/auth"
)

type contextKey string

const (
	userIDKey  contextKey = "user_id"
	emailKey   contextKey = "email"
	adminIDKey contextKey = "admin_id"
)

func claimsContext(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	ctx = context.WithValue(ctx, emailKey, claims.Email)
	if claims.Purpose == auth.PurposeImpersonate {
		ctx = context.WithValue(ctx, adminIDKey, claims.AdminID)
	}
	return ctx
}

func acceptable(claims *auth.Claims) bool {
	return claims.Purpose == auth.PurposeSession || claims.Purpose == auth.PurposeImpersonate
}

// UserAuth returns middleware that authenticates requests via a Bearer
// JWT (Authorization header or "session" cookie). Session tokens and
// admin-issued impersonation tokens are accepted; for the latter the
// acting admin's id is kept in context alongside the effective user.
func UserAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
				claims, err := auth.ValidateToken(jwtSecret, tokenStr)
				if err != nil {
					response.Error(w, http.StatusUnauthorized, "invalid token")
					return
				}
				if !acceptable(claims) {
					response.Error(w, http.StatusUnauthorized, "invalid token purpose")
					return
				}
				next.ServeHTTP(w, r.WithContext(claimsContext(r.Context(), claims)))
				return
			}

			if cookie, err := r.Cookie("session"); err == nil {
				claims, err := auth.ValidateToken(jwtSecret, cookie.Value)
				if err == nil && acceptable(claims) {
					next.ServeHTTP(w, r.WithContext(claimsContext(r.Context(), claims)))
					return
				}
			}

			response.Error(w, http.StatusUnauthorized, "authentication required")
		})
	}
}

// OptionalUserAuth attaches identity when a valid token is presented
// but lets anonymous requests through. Used on endpoints that serve
// both authenticated users and fingerprinted clients.
func OptionalUserAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
				if claims, err := auth.ValidateToken(jwtSecret, tokenStr); err == nil && acceptable(claims) {
					next.ServeHTTP(w, r.WithContext(claimsContext(r.Context(), claims)))
					return
				}
			}
			if cookie, err := r.Cookie("session"); err == nil {
				if claims, err := auth.ValidateToken(jwtSecret, cookie.Value); err == nil && acceptable(claims) {
					next.ServeHTTP(w, r.WithContext(claimsContext(r.Context(), claims)))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext returns the effective user's ID, or 0 if not set.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 0
}

// EmailFromContext returns the authenticated user's email, or empty string.
func EmailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(emailKey).(string); ok {
		return email
	}
	return ""
}

// ImpersonatorFromContext returns the acting admin's id when the
// request carries an impersonation token, or 0 otherwise.
func ImpersonatorFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(adminIDKey).(int); ok {
		return id
	}
	return 0
}

// TestUserIDKey returns the context key for user_id (for testing only).
func TestUserIDKey() contextKey { return userIDKey }
