package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GraphQLOperationsTotal counts executed GraphQL documents by operation name.
	GraphQLOperationsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_operations_total",
			Help:      "Total number of executed GraphQL operations",
		},
		[]string{"operation"},
	)

	// GraphQLErrorsTotal counts GraphQL errors returned to clients.
	GraphQLErrorsTotal = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_errors_total",
			Help:      "Total number of GraphQL errors returned to clients",
		},
	)
)
