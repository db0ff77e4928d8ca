// Package graph exposes the booking API as a GraphQL schema: User, Event
// and Booking types with lazily resolved references, batched through
// per-request loaders.
package graph

import (
	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
)

// redactedPassword is what a user's password field looks like from the
// outside. It is a fixed placeholder, never omitted.
const redactedPassword = "*******"

// Resolver wires the domain services into the GraphQL field resolvers.
type Resolver struct {
	users    *users.Service
	events   *events.Service
	bookings *bookings.Service
	tokens   *auth.TokenManager
}

func NewResolver(users *users.Service, events *events.Service, bookings *bookings.Service, tokens *auth.TokenManager) *Resolver {
	return &Resolver{
		users:    users,
		events:   events,
		bookings: bookings,
		tokens:   tokens,
	}
}

// AuthData is the login payload: the issued token plus its subject and
// validity in hours.
type AuthData struct {
	UserID          string
	Token           string
	TokenExpiration int
}
