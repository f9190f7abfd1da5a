// Package metrics holds the Prometheus collectors for the handshake core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "waveos"

type Metrics struct {
	registry *prometheus.Registry

	BeaconRotations prometheus.Counter
	Resolutions     *prometheus.CounterVec
	Signals         *prometheus.CounterVec
	SignalConflicts prometheus.Counter
	ChatsOpened     prometheus.Counter
	ChatsRepaired   prometheus.Counter
	GuardFailures   prometheus.Counter
	RateLimited     *prometheus.CounterVec
	SweepRows       *prometheus.CounterVec
	SweepErrors     *prometheus.CounterVec
	SweepDuration   prometheus.Histogram
}

// New creates the collectors on a private registry so independent instances
// (tests, multiple servers in one process) never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		BeaconRotations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "beacon_rotations_total",
			Help: "Beacons issued by rotation.",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "beacon_resolutions_total",
			Help: "Beacon resolutions by result (hidden, disclosed, not_found).",
		}, []string{"result"}),
		Signals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "wave_signals_total",
			Help: "Wave signals by outcome (created, repeated, mutual, existing).",
		}, []string{"outcome"}),
		SignalConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "wave_signal_conflicts_total",
			Help: "Concurrent write conflicts recovered by re-running the signal decision.",
		}),
		ChatsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "chats_opened_total",
			Help: "Chats opened by mutual waves.",
		}),
		ChatsRepaired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "chats_repaired_total",
			Help: "Mutual waves found without a chat row and repaired.",
		}),
		GuardFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "privacy_guard_failures_total",
			Help: "Block lookups that failed and were treated as blocked.",
		}),
		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rate_limited_total",
			Help: "Requests rejected by the per-caller rate limit.",
		}, []string{"operation"}),
		SweepRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sweep_rows_total",
			Help: "Rows expired by the cleanup sweep per action.",
		}, []string{"action"}),
		SweepErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sweep_errors_total",
			Help: "Failed sweep actions.",
		}, []string{"action"}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "sweep_duration_seconds",
			Help:    "Wall time of one cleanup sweep.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.BeaconRotations, m.Resolutions, m.Signals, m.SignalConflicts,
		m.ChatsOpened, m.ChatsRepaired, m.GuardFailures, m.RateLimited,
		m.SweepRows, m.SweepErrors, m.SweepDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
