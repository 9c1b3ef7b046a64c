// Package metrics holds the process wide Prometheus collectors
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bench"

var (
	// HTTPRequests counts served requests by route pattern, method and status class
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration measures request latency by route pattern
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// SnapshotLoads counts snapshot builds by source and outcome
	SnapshotLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_loads_total",
			Help:      "Total number of snapshot loads",
		},
		[]string{"source", "outcome"},
	)

	// SnapshotDuration measures fetch plus aggregation time
	SnapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_load_duration_seconds",
			Help:      "Duration of snapshot loads in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"source"},
	)

	// RowsIngested counts rows that survived validation
	RowsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_ingested_total",
			Help:      "Total number of rows accepted by ingestion",
		},
		[]string{"source"},
	)

	// RowsSkipped counts rows dropped by ingestion, by reason
	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_skipped_total",
			Help:      "Total number of rows skipped by ingestion",
		},
		[]string{"source", "reason"},
	)

	// SourceQueries counts SQL row source queries by backend and outcome
	SourceQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_queries_total",
			Help:      "Total number of queries sent to SQL row sources",
		},
		[]string{"backend", "outcome"},
	)

	// SourceQueryDuration measures time to first row, not the scan
	SourceQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_query_duration_seconds",
			Help:      "Duration of SQL row source queries in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	// CacheLookups counts snapshot cache lookups by result
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_cache_lookups_total",
			Help:      "Total number of snapshot cache lookups",
		},
		[]string{"source", "result"},
	)
)

// RecordRequest records one served request
func RecordRequest(route, method string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, StatusClass(status)).Inc()
	HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordLoad records one snapshot load; ok=false marks a failed fetch
func RecordLoad(source string, ok bool, elapsed time.Duration) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	SnapshotLoads.WithLabelValues(source, outcome).Inc()
	SnapshotDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// RecordQuery records one row source query
func RecordQuery(backend string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	SourceQueries.WithLabelValues(backend, outcome).Inc()
	SourceQueryDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// RecordCache records a cache hit or miss
func RecordCache(source string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(source, result).Inc()
}

// StatusClass folds a status code into 2xx, 3xx, 4xx or 5xx
func StatusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	}
	return "2xx"
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
