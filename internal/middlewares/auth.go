package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/invest-ledger/internal/jwt"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores its claims in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
