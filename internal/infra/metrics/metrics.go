// Package metrics exposes inventory counters to Prometheus.
package metrics

import (
	"net/http"
	"strings"

	"locus/config"
	"locus/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements service.InventoryMetrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	scans          *prometheus.CounterVec
	historyEntries prometheus.Counter
	historyFailed  prometheus.Counter
	accessDenied   *prometheus.CounterVec
	activeViews    prometheus.Gauge
}

var _ service.InventoryMetrics = (*Metrics)(nil)

// NewMetrics registers the inventory collectors and the Go runtime collectors
// on a fresh registry.
func NewMetrics(cfg *config.Config) *Metrics {
	namespace := strings.ReplaceAll(cfg.Env.ServiceName, "-", "_")
	if namespace == "" {
		namespace = "locus"
	}

	m := New(prometheus.NewRegistry(), namespace)
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// New registers the inventory collectors on registry.
func New(registry *prometheus.Registry, namespace string) *Metrics {
	m := &Metrics{
		registry: registry,
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_resolutions_total",
			Help:      "Scanned codes resolved, by resulting mode.",
		}, []string{"mode"}),
		historyEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_entries_total",
			Help:      "Change history entries persisted.",
		}),
		historyFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_write_failures_total",
			Help:      "Change history entries that failed to persist after the asset was updated.",
		}),
		accessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Gated operations denied, by operation.",
		}, []string{"operation"}),
		activeViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_views_active",
			Help:      "Open live view subscriptions.",
		}),
	}

	registry.MustRegister(m.scans, m.historyEntries, m.historyFailed, m.accessDenied, m.activeViews)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ScanResolved(mode string) {
	m.scans.WithLabelValues(mode).Inc()
}

func (m *Metrics) HistoryEntriesWritten(n int) {
	m.historyEntries.Add(float64(n))
}

func (m *Metrics) HistoryWriteFailed(n int) {
	m.historyFailed.Add(float64(n))
}

func (m *Metrics) AccessDenied(operation string) {
	m.accessDenied.WithLabelValues(operation).Inc()
}

func (m *Metrics) ViewOpened() {
	m.activeViews.Inc()
}

func (m *Metrics) ViewClosed() {
	m.activeViews.Dec()
}
