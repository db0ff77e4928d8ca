package graph

import (
	"context"
	"errors"

	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/gatherhub/server/internal/loader"
	"github.com/gatherhub/server/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loaders bundles the per-request entity loaders. One bundle is built for
// each incoming request and carried in its context; it must never be shared
// across requests.
type Loaders struct {
	Users  *loader.Loader[*users.User]
	Events *loader.Loader[*events.Event]
}

func NewLoaders(repo storage.Repository) *Loaders {
	return &Loaders{
		Users: loader.New(
			repo.Users().FindByIDs,
			func(u *users.User) primitive.ObjectID { return u.ID },
			loader.Config{},
		),
		Events: loader.New(
			repo.Events().FindByIDs,
			func(e *events.Event) primitive.ObjectID { return e.ID },
			loader.Config{},
		),
	}
}

type loadersKey struct{}

var errNoLoaders = errors.New("request loaders not configured")

func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, loaders)
}

func loadersFrom(ctx context.Context) (*Loaders, error) {
	loaders, ok := ctx.Value(loadersKey{}).(*Loaders)
	if !ok || loaders == nil {
		return nil, errNoLoaders
	}
	return loaders, nil
}
