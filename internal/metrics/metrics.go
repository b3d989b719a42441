package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	ListsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlist_lists_created_total",
			Help: "Lists created, by slug origin (given or generated)",
		},
		[]string{"slug"},
	)

	SlugConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlist_slug_conflicts_total",
			Help: "Inserts rejected by the slug unique constraint",
		},
	)

	URLsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urlist_urls_created_total",
			Help: "URLs added to lists",
		},
	)

	MetadataFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlist_metadata_fetch_total",
			Help: "Outbound metadata fetches by result",
		},
		[]string{"result"},
	)

	MetadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "urlist_metadata_fetch_duration_seconds",
			Help:    "Outbound metadata fetch latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlist_cache_requests_total",
			Help: "Cache lookups by cache and result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)
)

func RecordHTTPMetrics(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if responseSize >= 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

func RecordMetadataFetch(result string, duration time.Duration) {
	MetadataFetchTotal.WithLabelValues(result).Inc()
	MetadataFetchDuration.Observe(duration.Seconds())
}

func RecordCacheLookup(cache, result string) {
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}
