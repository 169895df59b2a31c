package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Metrics holds the Prometheus collectors for one machine (or a group of
// machines sharing a registerer).
type Metrics struct {
	Transitions    *prometheus.CounterVec
	ListenerErrors prometheus.Counter
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer to use the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ratchet_transitions_total",
				Help: "Committed transitions by source state, action and destination.",
			},
			[]string{"from", "action", "to"},
		),
		ListenerErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ratchet_listener_errors_total",
				Help: "Listener failures isolated during notification cycles.",
			},
		),
	}
	reg.MustRegister(m.Transitions, m.ListenerErrors)
	return m
}

// Hooks returns lifecycle hooks feeding these collectors. Combine with
// other hooks via Join when a machine needs more than one consumer.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ev *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(ev.From, ev.Action, ev.To).Inc()
		},
		OnListenerError: func(*domain.ListenerErrorEvent) {
			m.ListenerErrors.Inc()
		},
	}
}

// Join fans one machine's lifecycle events out to several hook sets, in
// argument order.
func Join(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ev *domain.TransitionEvent) {
			for _, h := range hooks {
				if h.OnTransition != nil {
					h.OnTransition(ev)
				}
			}
		},
		OnListenerError: func(ev *domain.ListenerErrorEvent) {
			for _, h := range hooks {
				if h.OnListenerError != nil {
					h.OnListenerError(ev)
				}
			}
		},
	}
}
