package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds the HTTP service collectors on a private registry so that
// several servers (tests included) never collide.
type Service struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	Latency        *prometheus.HistogramVec
	StepsGenerated *prometheus.HistogramVec
	BSTOperations  *prometheus.CounterVec
}

func NewService() *Service {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Service{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortviz",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"route", "status"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortviz",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		StepsGenerated: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortviz",
			Subsystem: "generator",
			Name:      "steps",
			Help:      "Number of steps per generated sequence",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 12),
		}, []string{"algorithm"}),
		BSTOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortviz",
			Subsystem: "bst",
			Name:      "operations_total",
			Help:      "BST operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
}

func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

func (s *Service) Registry() *prometheus.Registry { return s.registry }
