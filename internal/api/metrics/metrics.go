// Package metrics defines all custom Prometheus metrics for the event
// platform API. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "event_platform"

// SignupsTotal counts successfully created user accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// EventWritesTotal counts admin event mutations.
// Label:
//   - op: "create", "update", or "delete"
var EventWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_writes_total",
		Help:      "Total number of event create/update/delete operations.",
	},
	[]string{"op"},
)

// TicketsIssuedTotal counts tickets issued through event registration.
var TicketsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_issued_total",
		Help:      "Total number of tickets issued.",
	},
)

// EventCacheTotal counts event-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var EventCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_cache_total",
		Help:      "Total number of event-list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
