package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/server/internal/domain/bookings"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*bookings.Booking, error) {
	var booking bookings.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*bookings.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	var out []*bookings.Booking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) Insert(ctx context.Context, booking *bookings.Booking) error {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
