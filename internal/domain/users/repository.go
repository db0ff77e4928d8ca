package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	// FindByID returns nil, nil when no user matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	// FindByIDs returns the users matching any of ids, in no particular order.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*User, error)
	// FindByEmail returns nil, nil when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Insert stores a new user and fills in its id. Returns ErrAlreadyExists
	// when the email is taken.
	Insert(ctx context.Context, user *User) error
	// AppendCreatedEvent adds eventID to the user's created-events set.
	AppendCreatedEvent(ctx context.Context, userID, eventID primitive.ObjectID) error
}
