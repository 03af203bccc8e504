package jwt

import (
	"context"

	"github.com/sbilibin2017/invest-ledger/internal/models"
)

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying the session claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the session claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}

// Identity converts the claims into the caller identity used by the ledger.
func (c *Claims) Identity() models.Identity {
	return models.Identity{UserID: c.UserID, Email: c.Email, Phone: c.Phone}
}
