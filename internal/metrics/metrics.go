// Package metrics exposes Prometheus collectors for the storage engine and
// the registry services.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	reg *prometheus.Registry

	writeSeconds  prometheus.Histogram
	readSeconds   prometheus.Histogram
	commitSeconds prometheus.Histogram
	bytesWritten  prometheus.Counter
	bytesRead     prometheus.Counter
	batchOps      prometheus.Counter

	ops     *prometheus.CounterVec
	entries *prometheus.GaugeVec
}

// New creates collectors on a fresh registry, plus the Go and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		writeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "write_seconds",
			Help:    "Latency of single-key writes.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		readSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "read_seconds",
			Help:    "Latency of point reads.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		commitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "batch_commit_seconds",
			Help:    "Latency of batch commits.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "written_bytes_total",
			Help: "Bytes written to the store.",
		}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "read_bytes_total",
			Help: "Bytes read from the store.",
		}),
		batchOps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fungible", Subsystem: "storage", Name: "batch_ops_total",
			Help: "Operations committed in batches.",
		}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fungible", Subsystem: "registry", Name: "operations_total",
			Help: "Registry operations by registry, operation and outcome.",
		}, []string{"registry", "op", "outcome"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "fungible", Subsystem: "registry", Name: "listed_entries",
			Help: "Entries returned by the most recent list call.",
		}, []string{"registry"}),
	}
	reg.MustRegister(
		m.writeSeconds, m.readSeconds, m.commitSeconds,
		m.bytesWritten, m.bytesRead, m.batchOps,
		m.ops, m.entries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveWrite implements pebblestore.MetricsHook.
func (m *Metrics) ObserveWrite(elapsed time.Duration, bytes int) {
	m.writeSeconds.Observe(elapsed.Seconds())
	m.bytesWritten.Add(float64(bytes))
}

// ObserveRead implements pebblestore.MetricsHook.
func (m *Metrics) ObserveRead(elapsed time.Duration, bytes int) {
	m.readSeconds.Observe(elapsed.Seconds())
	m.bytesRead.Add(float64(bytes))
}

// ObserveBatchCommit implements pebblestore.MetricsHook.
func (m *Metrics) ObserveBatchCommit(elapsed time.Duration, numOps int, bytes int) {
	m.commitSeconds.Observe(elapsed.Seconds())
	m.batchOps.Add(float64(numOps))
	m.bytesWritten.Add(float64(bytes))
}

// Op counts one registry operation. A nil error is recorded as "ok".
func (m *Metrics) Op(registry, op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ops.WithLabelValues(registry, op, outcome).Inc()
}

// Listed records the size of a list result.
func (m *Metrics) Listed(registry string, n int) {
	if m == nil {
		return
	}
	m.entries.WithLabelValues(registry).Set(float64(n))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
