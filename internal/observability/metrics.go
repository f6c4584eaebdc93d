package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus instruments for a cleaning run. They live
// on a private registry: each run is a fresh process, and a private
// registry keeps repeated construction in tests panic-free.
type Metrics struct {
	registry *prometheus.Registry

	RowsIn       prometheus.Gauge
	RowsOut      prometheus.Gauge
	RowsDropped  *prometheus.CounterVec   // labels: pass
	PassDuration *prometheus.HistogramVec // labels: pass
	PassErrors   *prometheus.CounterVec   // labels: pass

	CoordinatesResolved prometheus.Counter
	CoordinatesSkipped  prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsIn: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rescue_etl",
			Name:      "rows_in",
			Help:      "Rows in the raw table before the first pass.",
		}),
		RowsOut: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rescue_etl",
			Name:      "rows_out",
			Help:      "Rows in the cleaned table after the last pass.",
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rescue_etl",
			Name:      "rows_dropped_total",
			Help:      "Rows removed from the table, by pass.",
		}, []string{"pass"}),
		PassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rescue_etl",
			Name:      "pass_duration_seconds",
			Help:      "Duration of each cleaning pass over the whole table.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"pass"}),
		PassErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rescue_etl",
			Name:      "pass_errors_total",
			Help:      "Fatal pass failures, by pass.",
		}, []string{"pass"}),
		CoordinatesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rescue_etl",
			Name:      "coordinates_resolved_total",
			Help:      "Rows whose latitude/longitude were derived from grid coordinates.",
		}),
		CoordinatesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rescue_etl",
			Name:      "coordinates_skipped_total",
			Help:      "Rows left unresolved under the skip policy.",
		}),
	}

	m.registry.MustRegister(
		m.RowsIn,
		m.RowsOut,
		m.RowsDropped,
		m.PassDuration,
		m.PassErrors,
		m.CoordinatesResolved,
		m.CoordinatesSkipped,
	)
	return m
}

// Registry exposes the private registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push delivers the run's metrics to a Prometheus Pushgateway. A batch job
// is gone before a scrape would reach it, so exposition happens by push at
// the end of the run instead of over HTTP.
func (m *Metrics) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.registry).Push()
}
