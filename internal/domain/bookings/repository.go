package bookings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	// FindByID returns nil, nil when no booking matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Booking, error)
	// Insert stores a new booking and fills in its id.
	Insert(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
