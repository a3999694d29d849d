package ctxutil

import (
	"context"

	"github.com/asketsystem/lifebook/internal/auth"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, ident *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// GetIdentity returns the verified identity attached by the auth middleware,
// or nil when the request was not authenticated.
func GetIdentity(ctx context.Context) *auth.Identity {
	ident, ok := ctx.Value(identityKey{}).(*auth.Identity)
	if !ok {
		return nil
	}
	return ident
}
