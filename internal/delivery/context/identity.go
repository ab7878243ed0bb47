package context

import (
	"context"

	"vidvault/internal/domain/entity"
)

const (
	// KeyIdentity is the key for storing the authenticated caller in context.
	KeyIdentity ContextKey = "identity"

	// CookieSessionToken is the name of the cookie carrying the session token.
	CookieSessionToken = "token"
)

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity returns the authenticated caller, if any.
func GetIdentity(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
