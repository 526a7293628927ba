// Package metrics prometheus коллекторы HTTP слоя и конвейера изменений счетов.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invoice_dashboard"

// Outcome результат операции конвейера изменений.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
	OutcomeFailure Outcome = "failure"
)

// Metrics набор коллекторов, зарегистрированных в собственном реестре.
type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	mutations    *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	logins       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
			},
			[]string{"method", "route"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "invoices",
				Name:      "mutations_total",
				Help:      "Invoice mutations by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Rendered response cache lookups.",
			},
			[]string{"result"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "logins_total",
				Help:      "Login attempts by result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.httpRequests, m.httpDuration, m.mutations, m.cacheLookups, m.logins)
	return m
}

// Middleware считает запросы и их длительность. В route попадает шаблон маршрута gin, а не сырой путь.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveMutation(operation string, outcome Outcome) {
	m.mutations.WithLabelValues(operation, string(outcome)).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLogin(result string) {
	m.logins.WithLabelValues(result).Inc()
}
