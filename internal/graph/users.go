package graph

import (
	"fmt"

	"github.com/gatherhub/server/internal/domain/events"
	"github.com/graphql-go/graphql"
)

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := r.users.Authenticate(p.Context, email, password)
	if err != nil {
		return nil, err
	}

	token, err := r.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return AuthData{
		UserID:          user.ID.Hex(),
		Token:           token,
		TokenExpiration: int(r.tokens.Expiry().Hours()),
	}, nil
}

func (r *Resolver) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	input, err := userInputFromArgs(p.Args)
	if err != nil {
		return nil, err
	}

	user, err := r.users.Register(p.Context, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// The registration response carries a null password, not the
	// placeholder.
	user.Password = ""
	return user, nil
}

func (r *Resolver) resolveUserCreatedEvents(p graphql.ResolveParams) (interface{}, error) {
	user := sourceUser(p)
	if len(user.CreatedEvents) == 0 {
		return []*events.Event{}, nil
	}

	loaders, err := loadersFrom(p.Context)
	if err != nil {
		return nil, err
	}
	thunk := loaders.Events.LoadManyThunk(p.Context, user.CreatedEvents)
	return func() (interface{}, error) { return thunk() }, nil
}
