package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/server/internal/domain/events"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository struct {
	coll *mongo.Collection
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*events.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var out []*events.Event
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*events.Event, error) {
	var event events.Event
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*events.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var out []*events.Event
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) Insert(ctx context.Context, event *events.Event) error {
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = id
	}
	return nil
}
