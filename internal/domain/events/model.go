package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is read-only after creation. Creator is a back-reference used for
// display only.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Date        time.Time          `bson:"date"`
	Creator     primitive.ObjectID `bson:"creator"`
}
