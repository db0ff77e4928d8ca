package graph

import (
	"context"
	"errors"

	"github.com/gatherhub/server/internal/auth"
)

// ErrUnauthenticated is the single authorization error: mutating operations
// require an identity on the request context, nothing more.
var ErrUnauthenticated = errors.New("Unauthenticated")

func requireAuth(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		return auth.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}
