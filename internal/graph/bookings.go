package graph

import (
	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (r *Resolver) resolveBookings(p graphql.ResolveParams) (interface{}, error) {
	identity, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return r.bookings.ListByUser(p.Context, userID)
}

func (r *Resolver) resolveBookEvent(p graphql.ResolveParams) (interface{}, error) {
	identity, err := requireAuth(p.Context)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	// An unparseable event id behaves like a missing event: the booking is
	// still created, with an empty event reference.
	rawEventID, _ := p.Args["eventId"].(string)
	eventID, err := primitive.ObjectIDFromHex(rawEventID)
	if err != nil {
		eventID = primitive.NilObjectID
	}

	return r.bookings.Book(p.Context, userID, eventID)
}

func (r *Resolver) resolveCancelBooking(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAuth(p.Context); err != nil {
		return nil, err
	}

	rawBookingID, _ := p.Args["bookingId"].(string)
	bookingID, err := primitive.ObjectIDFromHex(rawBookingID)
	if err != nil {
		return nil, bookings.ErrNotFound
	}

	return r.bookings.Cancel(p.Context, bookingID)
}

func (r *Resolver) resolveBookingUser(p graphql.ResolveParams) (interface{}, error) {
	booking := p.Source.(*bookings.Booking)

	loaders, err := loadersFrom(p.Context)
	if err != nil {
		return nil, err
	}
	thunk := loaders.Users.LoadThunk(p.Context, booking.User)
	return func() (interface{}, error) { return thunk() }, nil
}

func (r *Resolver) resolveBookingEvent(p graphql.ResolveParams) (interface{}, error) {
	booking := p.Source.(*bookings.Booking)
	if booking.Event.IsZero() {
		return nil, nil
	}

	loaders, err := loadersFrom(p.Context)
	if err != nil {
		return nil, err
	}
	thunk := loaders.Events.LoadThunk(p.Context, booking.Event)
	return func() (interface{}, error) { return thunk() }, nil
}
