package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Nearby lookup outcomes
const (
	OutcomePicked   = "picked"
	OutcomeEmpty    = "empty"
	OutcomeUpstream = "upstream_error"
	OutcomeInvalid  = "invalid"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	NearbyLookups    *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	CommentsCreated  prometheus.Counter
	CommentsDeleted  prometheus.Counter
	LoginAttempts    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RateLimitRejects *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		NearbyLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "food_picker_nearby_lookups_total",
				Help: "Nearby restaurant lookups by outcome",
			},
			[]string{"outcome"},
		),
		UpstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "food_picker_upstream_errors_total",
				Help: "Failed places API calls by upstream status code (0 for transport failures)",
			},
			[]string{"status"},
		),
		CommentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "food_picker_comments_created_total",
			Help: "Comments stored",
		}),
		CommentsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "food_picker_comments_deleted_total",
			Help: "Comments removed by an admin",
		}),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "food_picker_admin_login_attempts_total",
				Help: "Admin login attempts by result",
			},
			[]string{"result"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "food_picker_http_request_duration_seconds",
				Help:    "HTTP request latency by route template and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		RateLimitRejects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "food_picker_rate_limited_total",
				Help: "Requests rejected by the per-IP rate limiter",
			},
			[]string{"route"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
