package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bowyer_dispatch_total",
		Help: "Total operations routed to a kernel realization, by operation and policy",
	}, []string{"op", "policy"})

	dispatchMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bowyer_dispatch_misses_total",
		Help: "Total lookups of an unregistered (operation, policy, kind) combination",
	})

	// PolicyConflicts counts resolution failures over mixed container tags.
	// Incremented by the facade's resolver.
	PolicyConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bowyer_policy_conflicts_total",
		Help: "Total policy resolution failures over incompatible container tags",
	})
)
