package grpcserver

import (
	"context"

	"github.com/and161185/ecoscan/internal/identity"
)

type ctxKey string

const claimsKey ctxKey = "ecoscan.claims"

// WithClaims stores verified ID token claims in context.
func WithClaims(ctx context.Context, c *identity.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromCtx fetches verified claims from context.
func ClaimsFromCtx(ctx context.Context) (*identity.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*identity.Claims)
	return c, ok && c != nil
}

// EmailFromCtx returns the caller's email, the ledger key.
func EmailFromCtx(ctx context.Context) (string, bool) {
	c, ok := ClaimsFromCtx(ctx)
	if !ok {
		return "", false
	}
	return c.Email, true
}
