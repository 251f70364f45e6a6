package eventsink

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// Metrics holds the Prometheus metrics fed by tally events.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of completed API calls by method and status",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API call latency histogram",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method"},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of API calls that returned a non-2xx status",
			},
			[]string{"status"},
		),
	}
}

// ObserveResponse records one completed call.
func (m *Metrics) ObserveResponse(event tally.ResponseEvent) {
	m.RequestsTotal.WithLabelValues(event.Method, strconv.Itoa(event.Status)).Inc()
	m.RequestDuration.WithLabelValues(event.Method).Observe(event.Duration.Seconds())
}

// ObserveError records one failed call.
func (m *Metrics) ObserveError(event tally.ErrorEvent) {
	m.ErrorsTotal.WithLabelValues(strconv.Itoa(event.Status)).Inc()
}

// Attach subscribes the metrics to src.
func (m *Metrics) Attach(src tally.EventSource) Detach {
	return attach(src, m.ObserveResponse, m.ObserveError)
}
