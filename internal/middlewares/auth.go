package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-service/internal/jwt"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that rejects requests without a valid token.
// A missing Authorization header yields 403, an unusable token yields 401.
// On success the token claims are stored in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrTokenMissing) {
				logger.Log.Warnw("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Forbidden: No token provided")
				return
			}
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Error: msg})
}

type claimsKey struct{}

// SetClaimsToContext stores the authenticated identity in ctx.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext returns the authenticated identity, if any.
func GetClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok && claims != nil
}
