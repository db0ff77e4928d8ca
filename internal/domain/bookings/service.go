package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherhub/server/internal/domain/events"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo   Repository
	events events.Repository
}

func NewService(repo Repository, events events.Repository) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*Booking, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Book creates a booking for the caller against the target event. A missing
// event is not an error: the booking is stored with an empty event
// reference, matching the API's permissive contract.
func (s *Service) Book(ctx context.Context, userID, eventID primitive.ObjectID) (*Booking, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("look up event: %w", err)
	}

	now := time.Now().UTC()
	booking := &Booking{
		User:      userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if event != nil {
		booking.Event = event.ID
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return booking, nil
}

// Cancel deletes the booking and returns the event that was booked, not the
// booking itself.
func (s *Service) Cancel(ctx context.Context, bookingID primitive.ObjectID) (*events.Event, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("look up booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	event, err := s.events.FindByID(ctx, booking.Event)
	if err != nil {
		return nil, fmt.Errorf("look up booked event: %w", err)
	}
	if event == nil {
		return nil, events.ErrNotFound
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	return event, nil
}
