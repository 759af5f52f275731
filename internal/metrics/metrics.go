package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exodus"

type Metrics struct {
	PlansComputed  *prometheus.CounterVec
	FetchRequests  *prometheus.CounterVec
	ChunkShrinks   prometheus.Counter
	CacheLookups   *prometheus.CounterVec
	ProviderErrors *prometheus.CounterVec
	RouteFallbacks *prometheus.CounterVec
	CuratedFills   prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
	PlansPublished *prometheus.CounterVec
	ActiveWorkers  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PlansComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_computed_total",
			Help:      "Total number of evacuation plans computed, by urgency tier.",
		}, []string{"urgency"}),
		FetchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_fetch_requests_total",
			Help:      "Total number of store fetch operations, by operation and outcome.",
		}, []string{"operation", "status"}),
		ChunkShrinks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_chunk_shrinks_total",
			Help:      "Total number of chunked fetch restarts at a smaller chunk size.",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of success-cache lookups, by result.",
		}, []string{"result"}),
		ProviderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Total number of errors returned by external providers.",
		}, []string{"provider"}),
		RouteFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_fallbacks_total",
			Help:      "Total number of heuristic route estimates, by transport profile.",
		}, []string{"profile"}),
		CuratedFills: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shelter_curated_fills_total",
			Help:      "Total number of shelter categories filled from the curated table.",
		}),
		RequestSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of requests to external providers.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		PlansPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_published_total",
			Help:      "Total number of alert plans handed to the message broker, by outcome.",
		}, []string{"status"}),
		ActiveWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_workers",
			Help:      "Current number of active workers computing alert plans.",
		}),
	}
}

// NewMetricsForTesting registers the metrics on a throwaway registry.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
