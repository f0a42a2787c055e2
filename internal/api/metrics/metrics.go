// Package metrics defines and registers the custom Prometheus metrics of the
// storefront API. Metrics are registered with the default registry on import
// via promauto; Register adds them to any other registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts orders persisted through checkout.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	},
)

// OrderValue observes the submitted total of each placed order.
var OrderValue = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Submitted total of placed orders.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600, 3200},
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AdminActionsTotal counts successful admin operations.
// Label:
//   - action: "list_users", "toggle_admin", "delete_user", "export_orders", "export_contacts"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of admin operations performed.",
	},
	[]string{"action"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages stored.",
	},
)

// NotificationsTotal counts contact notification deliveries.
// Label:
//   - result: "sent", "failed" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of contact notifications, by delivery result.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks pending notifications in each worker channel.
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter, by route.",
	},
	[]string{"route"},
)

// Collectors returns every metric defined in this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		OrdersPlacedTotal,
		OrderValue,
		SignupsTotal,
		LoginsTotal,
		AdminActionsTotal,
		ContactMessagesTotal,
		NotificationsTotal,
		NotificationQueueDepth,
		RateLimitedTotal,
	}
}

// Register adds the storefront metrics to reg. Registering the same
// collectors twice on reg is an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
