package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherhub/server/internal/domain/bookings"
	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubStore struct{}

func (stubStore) Users() users.Repository       { return stubUsers{} }
func (stubStore) Events() events.Repository     { return stubEvents{} }
func (stubStore) Bookings() bookings.Repository { return stubBookings{} }

type stubUsers struct{}

func (stubUsers) FindByID(context.Context, primitive.ObjectID) (*users.User, error) {
	return nil, nil
}
func (stubUsers) FindByIDs(context.Context, []primitive.ObjectID) ([]*users.User, error) {
	return nil, nil
}
func (stubUsers) FindByEmail(context.Context, string) (*users.User, error) { return nil, nil }
func (stubUsers) Insert(context.Context, *users.User) error { return nil }
func (stubUsers) AppendCreatedEvent(context.Context, primitive.ObjectID, primitive.ObjectID) error {
	return nil
}

type stubEvents struct{}

func (stubEvents) FindAll(context.Context) ([]*events.Event, error) { return nil, nil }
func (stubEvents) FindByID(context.Context, primitive.ObjectID) (*events.Event, error) {
	return nil, nil
}
func (stubEvents) FindByIDs(context.Context, []primitive.ObjectID) ([]*events.Event, error) {
	return nil, nil
}
func (stubEvents) Insert(context.Context, *events.Event) error { return nil }

type stubBookings struct{}

func (stubBookings) FindByID(context.Context, primitive.ObjectID) (*bookings.Booking, error) {
	return nil, nil
}
func (stubBookings) FindByUser(context.Context, primitive.ObjectID) ([]*bookings.Booking, error) {
	return nil, nil
}
func (stubBookings) Insert(context.Context, *bookings.Booking) error  { return nil }
func (stubBookings) Delete(context.Context, primitive.ObjectID) error { return nil }

func testSchema(t *testing.T) graphql.Schema {
	t.Helper()
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"ping": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return "pong", nil
					},
				},
				"boom": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return nil, errors.New("kaboom")
					},
				},
			},
		}),
	})
	require.NoError(t, err)
	return schema
}

func TestGraphQLHandlerExecutesQuery(t *testing.T) {
	handler := NewGraphQLHandler(testSchema(t), stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ ping }"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data struct {
			Ping string `json:"ping"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "pong", body.Data.Ping)
}

func TestGraphQLHandlerRejectsBadJSON(t *testing.T) {
	handler := NewGraphQLHandler(testSchema(t), stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Resolver failures travel inside a 200 body, never as an HTTP error.
func TestGraphQLHandlerReportsResolverErrors(t *testing.T) {
	handler := NewGraphQLHandler(testSchema(t), stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ boom }"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body.Errors)
	require.Equal(t, "kaboom", body.Errors[0].Message)
}
