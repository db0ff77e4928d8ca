package graph_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is a map-backed stand-in for the mongo repository, shared by the
// schema tests.
type memStore struct {
	users    *memUsers
	events   *memEvents
	bookings *memBookings
}

func newMemStore() *memStore {
	return &memStore{
		users:    &memUsers{byID: make(map[primitive.ObjectID]*users.User)},
		events:   &memEvents{byID: make(map[primitive.ObjectID]*events.Event)},
		bookings: &memBookings{byID: make(map[primitive.ObjectID]*bookings.Booking)},
	}
}

func (s *memStore) Users() users.Repository       { return s.users }
func (s *memStore) Events() events.Repository     { return s.events }
func (s *memStore) Bookings() bookings.Repository { return s.bookings }

type memUsers struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]*users.User

	findByIDsCalls atomic.Int64
}

func (m *memUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memUsers) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*users.User, error) {
	m.findByIDsCalls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*users.User
	for _, id := range ids {
		if u, ok := m.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Insert(ctx context.Context, user *users.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == user.Email {
			return users.ErrAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	m.byID[user.ID] = user
	return nil
}

func (m *memUsers) AppendCreatedEvent(ctx context.Context, userID, eventID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[userID]; ok {
		u.CreatedEvents = append(u.CreatedEvents, eventID)
	}
	return nil
}

type memEvents struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]*events.Event
	order []primitive.ObjectID
}

func (m *memEvents) FindAll(ctx context.Context) ([]*events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.Event, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *memEvents) FindByID(ctx context.Context, id primitive.ObjectID) (*events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memEvents) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*events.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*events.Event
	for _, id := range ids {
		if e, ok := m.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEvents) Insert(ctx context.Context, event *events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = primitive.NewObjectID()
	m.byID[event.ID] = event
	m.order = append(m.order, event.ID)
	return nil
}

type memBookings struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]*bookings.Booking
	order []primitive.ObjectID
}

func (m *memBookings) FindByID(ctx context.Context, id primitive.ObjectID) (*bookings.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memBookings) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*bookings.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*bookings.Booking
	for _, id := range m.order {
		if b := m.byID[id]; b != nil && b.User == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) Insert(ctx context.Context, booking *bookings.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = primitive.NewObjectID()
	m.byID[booking.ID] = booking
	m.order = append(m.order, booking.ID)
	return nil
}

func (m *memBookings) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}
