package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the preview server's Prometheus metrics.
type Metrics struct {
	ActiveSessions prometheus.Gauge
	PatchesSent    prometheus.Counter
	EventsReceived prometheus.Counter
	ListenerPanics prometheus.Counter
}

// newMetrics registers the preview metrics on the given registerer.
func newMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "efx",
			Subsystem: "preview",
			Name:      "sessions_active",
			Help:      "Number of connected preview sessions.",
		}),
		PatchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "efx",
			Subsystem: "preview",
			Name:      "patches_sent_total",
			Help:      "Total JSON patches pushed to browsers.",
		}),
		EventsReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "efx",
			Subsystem: "preview",
			Name:      "events_received_total",
			Help:      "Total browser events applied to controls.",
		}),
		ListenerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "efx",
			Subsystem: "preview",
			Name:      "listener_panics_total",
			Help:      "Total panics recovered from efx listeners.",
		}),
	}
}
