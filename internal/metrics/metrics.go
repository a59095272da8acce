// Package metrics defines all custom Prometheus metrics for the NGO admin
// API. It is the single source of truth for metric names, labels, and help
// strings. Collectors register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ngo"

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts entities created through the API.
// Label:
//   - collection: "voluntarios", "proyectos", or "donaciones"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by collection.",
	},
	[]string{"collection"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreOperationDuration measures collection store round-trips, including any
// configured artificial latency.
// Labels:
//   - op: "fetch" or "append"
//   - collection: the collection key
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of collection store operations.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op", "collection"},
)

// StoreFallbackTotal counts fetches that found no persisted value and served
// the seed fallback instead.
// Label:
//   - collection: the collection key
var StoreFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fallback_total",
		Help:      "Total number of fetches answered with seed fallback data.",
	},
	[]string{"collection"},
)

// StoreErrorsTotal counts store operations that failed.
// Label:
//   - op: "fetch" or "append"
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of collection store operations that failed.",
	},
	[]string{"op"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
