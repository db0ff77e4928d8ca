package graph

import (
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *Resolver) resolveEvents(p graphql.ResolveParams) (interface{}, error) {
	return r.events.List(p.Context)
}

func (r *Resolver) resolveCreateEvent(p graphql.ResolveParams) (interface{}, error) {
	identity, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	input, date, err := eventInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}

	creator, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, users.ErrDoesNotExist
	}

	return r.events.Create(p.Context, events.CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Date:        date,
	}, creator)
}

// Reference fields hand the executor a thunk instead of a value. The loader
// registers the id right away; the executor collects thunks across the whole
// selection set before consuming any, so sibling references land in one
// batched fetch.
func (r *Resolver) resolveEventCreator(p graphql.ResolveParams) (interface{}, error) {
	event := sourceEvent(p)

	loaders, err := loadersFrom(p.Context)
	if err != nil {
		return nil, err
	}
	thunk := loaders.Users.LoadThunk(p.Context, event.Creator)
	return func() (interface{}, error) { return thunk() }, nil
}

func sourceEvent(p graphql.ResolveParams) *events.Event {
	return p.Source.(*events.Event)
}

func sourceUser(p graphql.ResolveParams) *users.User {
	return p.Source.(*users.User)
}
