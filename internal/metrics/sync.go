// Package metrics provides Prometheus metrics for catalog synchronisation.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SyncMetrics counts and times reconciler operations.
type SyncMetrics struct {
	registry *prometheus.Registry

	operations    *prometheus.CounterVec
	degradedReads prometheus.Counter
	duration      *prometheus.HistogramVec

	collectors []prometheus.Collector
}

// NewSyncMetrics creates the metrics and registers them on registry.
func NewSyncMetrics(registry *prometheus.Registry) (*SyncMetrics, error) {
	m := &SyncMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("register sync metrics: %w", err)
	}
	return m, nil
}

func (m *SyncMetrics) initMetrics() {
	m.operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grandboard_sync_operations_total",
			Help: "Total number of sync operations by outcome",
		},
		[]string{"operation", "status"},
	)

	m.degradedReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "grandboard_sync_degraded_reads_total",
			Help: "Number of loads served from the local cache because the remote store failed",
		},
	)

	m.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grandboard_sync_operation_duration_seconds",
			Help:    "Duration of sync operations",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"operation"},
	)

	m.collectors = []prometheus.Collector{m.operations, m.degradedReads, m.duration}
}

// Describe implements the Collector interface
func (m *SyncMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors {
		c.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *SyncMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors {
		c.Collect(ch)
	}
}

// RecordOperation counts one finished operation and observes its duration.
func (m *SyncMetrics) RecordOperation(operation string, err error, d time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.operations.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *SyncMetrics) RecordDegradedRead() {
	m.degradedReads.Inc()
}

// WriteTextfile dumps the registry in text exposition format.
func (m *SyncMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
