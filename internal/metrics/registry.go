package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry backend Prometheus metrics.
var (
	RegistryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvrdex",
			Name:      "registry_requests_total",
			Help:      "Total number of registry search requests",
		},
		[]string{"mode", "status"}, // status: ok, not_found, unavailable, backend_error
	)

	RegistryRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cvrdex",
			Name:      "registry_request_duration_seconds",
			Help:      "Registry search request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"mode"},
	)

	SkippedHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvrdex",
			Name:      "skipped_hits_total",
			Help:      "Raw hits dropped from list results because a required field was missing",
		},
		[]string{"mode"},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cvrdex",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
	)
)

var registryMetricsRegistered bool

// RegisterRegistryMetrics registers Prometheus registry metrics. Must be called once from main.
func RegisterRegistryMetrics() {
	if registryMetricsRegistered {
		return
	}
	prometheus.MustRegister(RegistryRequestsTotal)
	prometheus.MustRegister(RegistryRequestDuration)
	prometheus.MustRegister(SkippedHitsTotal)
	prometheus.MustRegister(RateLimitedTotal)
	registryMetricsRegistered = true
}
