// Package userctx provides utilities for storing and retrieving the
// authenticated caller's claims from context.Context. It is used by the
// authentication middleware to inject claims into the request context and by
// handlers to access the authenticated identity.
package userctx

import (
	"context"
	"fmt"

	"github.com/shopdash/shopdash/engine/auth/token"
)

// claimsKey is the context key for authenticated claims
type claimsKey struct{}

// WithClaims adds authenticated claims to context
func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext extracts authenticated claims from context
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return claims, ok
}

// MustClaimsFromContext extracts claims from context, erroring if absent.
// Only use this in handlers that sit behind the authentication middleware.
func MustClaimsFromContext(ctx context.Context) (*token.Claims, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("claims not found in context")
	}
	return claims, nil
}
