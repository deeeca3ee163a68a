// Package metrics defines and registers all custom Prometheus metrics for the
// sweet shop API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// SweetsCreatedTotal counts newly created sweets.
// Label:
//   - category: the sweet's category as supplied by the admin
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets created, by category.",
	},
	[]string{"category"},
)

// PurchasesTotal counts successful purchases.
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of successful purchases, by category.",
	},
	[]string{"category"},
)

// RestocksTotal counts successful restocks.
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of successful restocks, by category.",
	},
	[]string{"category"},
)

// StockConflictsTotal counts purchases rejected by the stock guard.
// Label:
//   - reason: "insufficient_stock" or "out_of_stock"
var StockConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_conflicts_total",
		Help:      "Total number of purchases rejected by the stock guard, by reason.",
	},
	[]string{"reason"},
)

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// UploadsRejectedTotal counts image uploads rejected before storage.
// Label:
//   - reason: "mime_type" or "too_large"
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of rejected image uploads, by reason.",
	},
	[]string{"reason"},
)
