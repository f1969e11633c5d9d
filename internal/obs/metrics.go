package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the pipeline stages. Registered on the default
// registry and exposed at /metrics.
var (
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_events_published_total",
		Help: "Inventory notifications published on the bus.",
	})

	ClassificationsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_classifications_total",
		Help: "Intent registrations applied by the classifier.",
	}, []string{"intent"})

	ClassificationMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intent_classification_misses_total",
		Help: "Notifications with no matching classification rule.",
	})

	SearchesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intent_searches_total",
		Help: "Search aggregations served.",
	})

	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_confirmed_total",
		Help: "Mock bookings confirmed.",
	})
)
