package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tokenstudio"

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	sessionsStarted prometheus.Counter
	sessionsActive  prometheus.Gauge
	sessionsRemoved *prometheus.CounterVec
	stepTransitions *prometheus.CounterVec
	launches        *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "sessions_started_total",
			Help:      "Total number of wizard sessions opened",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "sessions_active",
			Help:      "Number of wizard sessions held in memory",
		}),
		sessionsRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "sessions_removed_total",
				Help:      "Total number of wizard sessions removed by reason",
			},
			[]string{"reason"},
		),
		stepTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "step_transitions_total",
				Help:      "Total number of wizard actions by action and outcome",
			},
			[]string{"action", "result"},
		),
		launches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "launches_total",
				Help:      "Total number of simulated launches by authority flags",
			},
			[]string{"freeze_authority", "mint_authority"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~1s
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.sessionsStarted,
		m.sessionsActive,
		m.sessionsRemoved,
		m.stepTransitions,
		m.launches,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// SessionStarted records a new wizard session.
func (m *Metrics) SessionStarted() {
	m.sessionsStarted.Inc()
	m.sessionsActive.Inc()
}

// SessionRemoved records a session leaving the store.
func (m *Metrics) SessionRemoved(reason string) {
	m.sessionsActive.Dec()
	m.sessionsRemoved.WithLabelValues(reason).Inc()
}

// RecordStep records a wizard action such as "continue" or "back".
func (m *Metrics) RecordStep(action string, ok bool) {
	result := "ok"
	if !ok {
		result = "blocked"
	}
	m.stepTransitions.WithLabelValues(action, result).Inc()
}

// RecordLaunch records a simulated launch.
func (m *Metrics) RecordLaunch(freeze, mint bool) {
	m.launches.WithLabelValues(strconv.FormatBool(freeze), strconv.FormatBool(mint)).Inc()
}

// RecordRequest records a finished HTTP request.
func (m *Metrics) RecordRequest(route string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
