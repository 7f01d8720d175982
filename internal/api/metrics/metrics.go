// Package metrics defines and registers all custom Prometheus metrics for
// the point-of-sale API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Everything here registers with the default registry via promauto at
// package init; the router exposes it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos"

// ── Sale metrics ──────────────────────────────────────────────────────────────

// SalesCreatedTotal counts successfully recorded sales.
var SalesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales recorded.",
	},
)

// SaleTotalAmount observes the computed total of each recorded sale.
var SaleTotalAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sale_total_amount",
		Help:      "Distribution of sale totals.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added to catalogs.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of catalog products created.",
	},
)

// CatalogCacheTotal counts catalog cache lookups by result.
// Label:
//   - result: "hit" (served from cache) or "miss" (loaded from the database)
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected requests at the access gate.
// Label:
//   - reason: "missing_token", "invalid_token", or "unknown_user"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)
