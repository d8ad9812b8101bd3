// Package metrics holds the Prometheus collectors exported by devfinder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeTransport = "transport"
)

// Metrics groups the collectors used across the application.
type Metrics struct {
	Lookups          *prometheus.CounterVec
	LookupDuration   prometheus.Histogram
	SupersededLookup prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
	ThemeToggles     prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devfinder_lookups_total",
			Help: "Tracks the number of profile lookups by outcome.",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "devfinder_lookup_duration_seconds",
			Help:    "Tracks the latencies for profile lookups.",
			Buckets: prometheus.DefBuckets,
		}),
		SupersededLookup: factory.NewCounter(prometheus.CounterOpts{
			Name: "devfinder_lookups_superseded_total",
			Help: "Tracks lookup results discarded because a newer lookup was dispatched.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "devfinder_http_requests_total",
			Help: "Tracks the number of HTTP requests served by route.",
		}, []string{"route"}),
		ThemeToggles: factory.NewCounter(prometheus.CounterOpts{
			Name: "devfinder_theme_toggles_total",
			Help: "Tracks the number of theme toggles.",
		}),
	}
}

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// NewNop returns metrics registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
