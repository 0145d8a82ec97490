package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "venue_desk"

type Metrics struct {
	// method, route, status_code
	HTTPRequestsTotal *prometheus.CounterVec
	// method, route
	HTTPRequestDuration *prometheus.HistogramVec
	// result: hit, miss, error
	AvailabilityCacheLookups *prometheus.CounterVec
	AvailabilityCacheFlushes prometheus.Counter
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors alongside the desk metrics.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		AvailabilityCacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_cache_lookups_total",
				Help:      "Availability cache lookups by result",
			},
			[]string{"result"},
		),
		AvailabilityCacheFlushes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_cache_invalidations_total",
				Help:      "Times the availability cache was invalidated by a booking change",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AvailabilityCacheLookups,
		m.AvailabilityCacheFlushes,
	)
	return m
}
