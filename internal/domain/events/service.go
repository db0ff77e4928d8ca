package events

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherhub/server/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateInput struct {
	Title       string
	Description string
	Price       float64
	Date        time.Time
}

type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, users users.Repository) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.FindAll(ctx)
}

// Create persists the event with the caller as creator and appends it to
// the caller's created-events set. The event is written before the creator
// lookup; a caller whose account vanished mid-request gets an error but the
// event document stays.
func (s *Service) Create(ctx context.Context, input CreateInput, creator primitive.ObjectID) (*Event, error) {
	event := &Event{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Date:        input.Date,
		Creator:     creator,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	user, err := s.users.FindByID(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("look up creator: %w", err)
	}
	if user == nil {
		return nil, users.ErrDoesNotExist
	}

	if err := s.users.AppendCreatedEvent(ctx, creator, event.ID); err != nil {
		return nil, fmt.Errorf("append created event: %w", err)
	}
	return event, nil
}
