package ledger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	refreshTotal    *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	categoryLookups *prometheus.CounterVec
	balanceSyncs    *prometheus.CounterVec
	ledgerWrites    *prometheus.CounterVec
	ledgerSize      prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		refreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_refresh_total",
				Help: "Total number of ledger refreshes",
			},
			[]string{"outcome"},
		),
		refreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_refresh_duration_milliseconds",
				Help:    "Ledger refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categoryLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_lookups_total",
				Help: "Total number of category label resolutions",
			},
			[]string{"outcome"},
		),
		balanceSyncs: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_sync_total",
				Help: "Total number of balance pushes to the remote store",
			},
			[]string{"outcome"},
		),
		ledgerWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_writes_total",
				Help: "Total number of add/remove operations",
			},
			[]string{"operation", "outcome"},
		),
		ledgerSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_size",
				Help: "Current number of transactions in the local ledger",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	outcome := tags["outcome"]
	operation := tags["operation"]

	switch name {
	case "ledger.refresh":
		if outcome != "" {
			m.refreshTotal.WithLabelValues(outcome).Inc()
		}
	case "category.lookup":
		if outcome != "" {
			m.categoryLookups.WithLabelValues(outcome).Inc()
		}
	case "balance.sync":
		if outcome != "" {
			m.balanceSyncs.WithLabelValues(outcome).Inc()
		}
	case "ledger.write":
		if operation != "" && outcome != "" {
			m.ledgerWrites.WithLabelValues(operation, outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.refresh":
		m.refreshTotal.WithLabelValues("success").Inc()
		m.refreshDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.size":
		m.ledgerSize.Set(value)
	}
}
