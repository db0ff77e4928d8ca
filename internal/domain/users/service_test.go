package users

import (
	"context"
	"testing"

	"github.com/gatherhub/server/internal/auth"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	byID map[primitive.ObjectID]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[primitive.ObjectID]*User)}
}

func (f *fakeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return f.byID[id], nil
}

func (f *fakeRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*User, error) {
	var out []*User
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Insert(ctx context.Context, user *User) error {
	user.ID = primitive.NewObjectID()
	f.byID[user.ID] = user
	return nil
}

func (f *fakeRepo) AppendCreatedEvent(ctx context.Context, userID, eventID primitive.ObjectID) error {
	if u, ok := f.byID[userID]; ok {
		u.CreatedEvents = append(u.CreatedEvents, eventID)
	}
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	service := NewService(newFakeRepo())

	user, err := service.Register(context.Background(), "one@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.False(t, user.ID.IsZero())
	require.NotEqual(t, "hunter2hunter2", user.Password)
	require.True(t, auth.CheckPassword(user.Password, "hunter2hunter2"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewService(newFakeRepo())

	_, err := service.Register(context.Background(), "one@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "one@example.com", "different-pass")
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	service := NewService(newFakeRepo())

	registered, err := service.Register(context.Background(), "one@example.com", "hunter2hunter2")
	require.NoError(t, err)

	user, err := service.Authenticate(context.Background(), "one@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = service.Authenticate(context.Background(), "one@example.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = service.Authenticate(context.Background(), "nobody@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrNotFound)
}
