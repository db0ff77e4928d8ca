package events

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	FindAll(ctx context.Context) ([]*Event, error)
	// FindByID returns nil, nil when no event matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	// FindByIDs returns the events matching any of ids, in no particular order.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Event, error)
	// Insert stores a new event and fills in its id.
	Insert(ctx context.Context, event *Event) error
}
