package bookings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links a user to an event reference taken at booking time. Event may
// be the zero id when the target event did not resolve.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Event     primitive.ObjectID `bson:"event,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
