package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gatherhub/server/internal/api/handlers"
	"github.com/gatherhub/server/internal/api/middleware"
	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/config"
	"github.com/gatherhub/server/internal/metrics"
	"github.com/gatherhub/server/internal/storage"
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRouter assembles the HTTP surface: the GraphQL endpoint, health and
// metrics endpoints, and the SPA fallback, wrapped in the middleware chain.
// OPTIONS preflights are answered by the CORS middleware before routing.
func NewRouter(cfg config.Config, logger zerolog.Logger, repo storage.Repository, client *mongo.Client, tokens *auth.TokenManager, schema graphql.Schema) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/graphql", methodMux(map[string]http.Handler{
		http.MethodPost: handlers.NewGraphQLHandler(schema, repo),
	}))
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(client))
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", handlers.SPA(cfg.Static.Dir))

	var handler http.Handler = mux
	handler = middleware.Auth(tokens)(handler)
	handler = middleware.RateLimit(cfg.RateLimit)(handler)
	handler = middleware.CORS(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
