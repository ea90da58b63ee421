package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wayfarer_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedRequestsTotal counts feed requests by feed type.
	FeedRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_feed_requests_total",
		Help: "Total number of feed requests by feed type",
	}, []string{"feed"})

	// FeedComposeLatency records end-to-end feed composition latency by feed type.
	FeedComposeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wayfarer_feed_compose_latency_seconds",
		Help:    "Feed composition latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"feed"})

	// FeedItemsReturned records the number of items returned per feed request.
	FeedItemsReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wayfarer_feed_items_returned",
		Help:    "Number of journal entries returned per feed request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"feed"})

	// EngagementScoreLatency records the time spent scoring a candidate set.
	EngagementScoreLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wayfarer_engagement_score_latency_seconds",
		Help:    "Time spent computing engagement scores for a candidate set",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	// CounterRecountAnomalies counts failed counter recomputations by counter type.
	CounterRecountAnomalies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfarer_counter_recount_anomalies_total",
		Help: "Total number of failed like/comment counter recomputations",
	}, []string{"counter"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// ObserveFeedRequest records the metrics for one composed feed response.
func ObserveFeedRequest(feed string, items int, start time.Time) {
	FeedRequestsTotal.WithLabelValues(feed).Inc()
	FeedItemsReturned.WithLabelValues(feed).Observe(float64(items))
	FeedComposeLatency.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}
