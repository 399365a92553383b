package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amlsafe/landing/internal/services/web/platform/httpx"
)

const unmatchedRoute = "unmatched"

// Metrics owns the web service collectors. Each instance uses its own
// registry so handlers built in tests do not collide.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
	posters  *prometheus.CounterVec
}

// NewMetrics registers the web collectors plus the Go runtime and process
// collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amlsafe",
				Subsystem: "web",
				Name:      "requests_total",
				Help:      "HTTP requests served, by route pattern, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "amlsafe",
				Subsystem: "web",
				Name:      "request_duration_seconds",
				Help:      "Time spent serving HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "amlsafe",
			Subsystem: "web",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		posters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "amlsafe",
				Subsystem: "web",
				Name:      "poster_renders_total",
				Help:      "Particle poster lookups, by cache result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.inFlight,
		m.posters,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObservePoster counts a poster lookup as a cache "hit" or a "render".
func (m *Metrics) ObservePoster(hit bool) {
	if m == nil {
		return
	}
	result := "render"
	if hit {
		result = "hit"
	}
	m.posters.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency. The route label is the
// matched ServeMux pattern, so it must run inside any middleware that
// replaces the request.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.code())).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
