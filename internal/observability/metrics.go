package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kinograph_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kinograph_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// EngagementEvents counts engagement mutations by kind and operation.
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kinograph_engagement_events_total",
		Help: "Total engagement mutations by kind (friendship, like, reaction) and operation",
	}, []string{"kind", "operation"})

	// RecommendationRequests counts recommendation computations by outcome.
	RecommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kinograph_recommendation_requests_total",
		Help: "Total recommendation requests by outcome (hit, empty)",
	}, []string{"outcome"})
)

// ObserveQueryLatency records the latency of a completed database query.
func ObserveQueryLatency(operation, table string, start time.Time) {
	if table == "" {
		table = "unknown"
	}
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
