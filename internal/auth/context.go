package auth

import "context"

type identityKey struct{}

// WithIdentity attaches the authenticated identity to the request context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the authenticated identity, if the request carried a
// valid token. Absence means the request is anonymous.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
