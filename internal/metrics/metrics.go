package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. Collectors register
// against a private registry so tests can build as many instances as they
// need without duplicate registration panics.
type Metrics struct {
	Registry *prometheus.Registry

	RecommendationRequests *prometheus.CounterVec
	Interactions           *prometheus.CounterVec
	Feedback               prometheus.Counter
	ModelUpdates           prometheus.Counter
	RequestDuration        *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		RecommendationRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apteva_recommendation_requests_total",
			Help: "Recommendation requests served, by user type",
		}, []string{"user_type"}),
		Interactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apteva_interactions_total",
			Help: "Interactions recorded, by kind",
		}, []string{"kind"}),
		Feedback: factory.NewCounter(prometheus.CounterOpts{
			Name: "apteva_feedback_total",
			Help: "Ratings received",
		}),
		ModelUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "apteva_model_updates_total",
			Help: "Online learning weight updates applied",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apteva_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
