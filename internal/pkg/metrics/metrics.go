// Package metrics records reconciliation passes for the node-exporter
// textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for PassesTotal.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDryRun  = "dry_run"
)

// Registry holds the reconciler metrics on a private registry.
type Registry struct {
	reg *prometheus.Registry

	PassesTotal         *prometheus.CounterVec
	MutationsTotal      *prometheus.CounterVec
	StaleDestroyedTotal prometheus.Counter
	PassDuration        prometheus.Histogram
	LastSuccess         prometheus.Gauge
}

// NewRegistry creates and registers every metric.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		PassesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netreconcile_passes_total",
			Help: "Reconciliation passes by result.",
		}, []string{"result"}),
		MutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "netreconcile_mutations_total",
			Help: "Kernel and OVS mutations by operation.",
		}, []string{"op"}),
		StaleDestroyedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "netreconcile_stale_destroyed_total",
			Help: "Stale interfaces torn down.",
		}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "netreconcile_pass_duration_seconds",
			Help:    "Wall time of a reconciliation pass.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "netreconcile_last_success_timestamp_seconds",
			Help: "Unix time of the last successful pass.",
		}),
	}

	r.reg.MustRegister(r.PassesTotal, r.MutationsTotal, r.StaleDestroyedTotal, r.PassDuration, r.LastSuccess)
	return r
}

// ObservePass records the outcome of one pass.
func (r *Registry) ObservePass(result string, d time.Duration, at time.Time) {
	r.PassesTotal.WithLabelValues(result).Inc()
	r.PassDuration.Observe(d.Seconds())
	if result == ResultSuccess {
		r.LastSuccess.Set(float64(at.Unix()))
	}
}

// Mutation counts a single applied change.
func (r *Registry) Mutation(op string) {
	r.MutationsTotal.WithLabelValues(op).Inc()
}

// StaleDestroyed counts torn down stale interfaces.
func (r *Registry) StaleDestroyed(n int) {
	r.StaleDestroyedTotal.Add(float64(n))
}

// Gatherer exposes the private registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
