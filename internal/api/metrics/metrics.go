// Package metrics defines the custom Prometheus metrics for the journal
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "journal"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

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

// ArticlesMutatedTotal counts successful article lifecycle mutations.
// Label:
//   - operation: "create", "edit", or "delete"
var ArticlesMutatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_mutated_total",
		Help:      "Total number of successful article mutations, by operation.",
	},
	[]string{"operation"},
)

// ListCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of article list cache lookups, by result.",
	},
	[]string{"result"},
)
