package users

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account identified by its unique email. The created-events set
// only grows; users are never physically deleted.
type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Email         string               `bson:"email"`
	Password      string               `bson:"password"`
	CreatedEvents []primitive.ObjectID `bson:"created_events,omitempty"`
}
