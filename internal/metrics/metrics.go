// Package metrics holds the Prometheus instrumentation shared by both
// binaries. Collectors register themselves on the default registry so the
// /metrics endpoints can serve them through promhttp.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storeforge_http_requests_total",
			Help: "HTTP requests processed, labelled by handler, method and status code.",
		},
		[]string{"handler", "method", "code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storeforge_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, labelled by handler.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler"},
	)

	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storeforge_generations_total",
			Help: "Storefront bundles generated.",
		},
	)

	relayErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storeforge_relay_errors_total",
			Help: "Relay round trips that failed in transport or returned an unusable payload.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		generationsTotal,
		relayErrorsTotal,
	)
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(handler, method string, code int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(handler).Observe(elapsed.Seconds())
}

// IncGeneration counts one generated bundle.
func IncGeneration() {
	generationsTotal.Inc()
}

// IncRelayError counts one failed relay round trip.
func IncRelayError() {
	relayErrorsTotal.Inc()
}
