package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gatherhub/server/internal/api/middleware"
	"github.com/gatherhub/server/internal/graph"
	"github.com/gatherhub/server/internal/metrics"
	"github.com/gatherhub/server/internal/storage"
	"github.com/graphql-go/graphql"
)

// GraphQLHandler executes GraphQL documents against the schema. Each
// request gets its own loader bundle so batched lookups never cross request
// boundaries.
type GraphQLHandler struct {
	schema graphql.Schema
	repo   storage.Repository
}

func NewGraphQLHandler(schema graphql.Schema, repo storage.Repository) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, repo: repo}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx := graph.WithLoaders(r.Context(), graph.NewLoaders(h.repo))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	operation := req.OperationName
	if operation == "" {
		operation = "unnamed"
	}
	metrics.GraphQLOperationsTotal.WithLabelValues(operation).Inc()

	if result.HasErrors() {
		metrics.GraphQLErrorsTotal.Add(float64(len(result.Errors)))
		middleware.LoggerFromContext(r.Context()).Debug().
			Str("operation", operation).
			Int("errors", len(result.Errors)).
			Msg("graphql errors")
	}

	// Per GraphQL convention, resolver errors still travel in a 200 body.
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
