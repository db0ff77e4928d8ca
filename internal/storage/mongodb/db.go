package mongodb

import (
	"context"
	"fmt"

	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes and pings the MongoDB client. Startup aborts when
// this fails; there is no lazy reconnect.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// Repository implements storage.Repository backed by MongoDB collections.
type Repository struct {
	users    *UserRepository
	events   *EventRepository
	bookings *BookingRepository
}

func NewRepository(client *mongo.Client, database string) (*Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	db := client.Database(database)
	return &Repository{
		users:    &UserRepository{coll: db.Collection("users")},
		events:   &EventRepository{coll: db.Collection("events")},
		bookings: &BookingRepository{coll: db.Collection("bookings")},
	}, nil
}

func (r *Repository) Users() users.Repository {
	return r.users
}

func (r *Repository) Events() events.Repository {
	return r.events
}

func (r *Repository) Bookings() bookings.Repository {
	return r.bookings
}

// EnsureIndexes creates the unique email index backing the no-two-users-
// share-an-email invariant. Safe to run on every startup.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure users email index: %w", err)
	}
	return nil
}
