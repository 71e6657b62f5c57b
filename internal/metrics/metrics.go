package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesExecutedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordergraph_queries_executed_total",
		Help: "Total number of GraphQL query documents executed.",
	})

	BridgeRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordergraph_bridge_requests_total",
		Help: "Total number of natural-language query generation requests.",
	})

	BridgeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordergraph_bridge_failures_total",
		Help: "Total number of query generation requests that produced no query.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordergraph_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
