package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts the outcomes the operators care about: how many transitions
// go through and how often two parties race on the same order or listing.
type Metrics struct {
	transitionsApplied *prometheus.CounterVec
	conflictsDetected  prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		transitionsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "transitions_applied_total",
			Help:      "Successful state transitions, labeled by operation.",
		}, []string{"operation"}),
		conflictsDetected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bookmarket",
			Name:      "concurrency_conflicts_total",
			Help:      "Mutations rejected because the presented row version was stale.",
		}),
	}
}

func (m *Metrics) transitionApplied(operation string) {
	if m != nil {
		m.transitionsApplied.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) conflictDetected() {
	if m != nil {
		m.conflictsDetected.Inc()
	}
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint on the given echo
// instance, outside the authenticated API group.
func RegisterMetricsRoute(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
