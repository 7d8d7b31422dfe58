package observability

import (
	"github.com/aretw0/graphname/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "graphname"

// Metrics holds the collectors fed by store hooks.
type Metrics struct {
	Writes        *prometheus.CounterVec
	SkippedWrites *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	Subscribers   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Writes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "writes_total",
				Help:      "Total number of accepted writes per store.",
			},
			[]string{"store"},
		),
		SkippedWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "skipped_writes_total",
				Help:      "Writes suppressed by the equality policy.",
			},
			[]string{"store"},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "notifications_total",
				Help:      "Subscriber callbacks invoked by write notifications.",
			},
			[]string{"store"},
		),
		Subscribers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "subscribers",
				Help:      "Active subscribers per store.",
			},
			[]string{"store"},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Writes, m.SkippedWrites, m.Notifications, m.Subscribers} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns store hooks that update the collectors.
func (m *Metrics) Hooks() store.Hooks {
	gauge := func(e *store.Event) {
		m.Subscribers.WithLabelValues(e.Store).Set(float64(e.Subscribers))
	}
	return store.Hooks{
		OnSet: func(e *store.Event) {
			if e.Type == store.EventSetSkipped {
				m.SkippedWrites.WithLabelValues(e.Store).Inc()
				return
			}
			m.Writes.WithLabelValues(e.Store).Inc()
		},
		OnNotify: func(e *store.Event) {
			m.Notifications.WithLabelValues(e.Store).Add(float64(e.Subscribers))
		},
		OnSubscribe:   gauge,
		OnUnsubscribe: gauge,
	}
}
