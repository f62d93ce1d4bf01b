// Package metrics defines all custom Prometheus metrics for the practice
// admin API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "practice"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", "rate_limited", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// AuthRejectionsTotal counts requests rejected by the auth guard.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "unknown_user", "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a handler.",
	},
	[]string{"reason"},
)

// ImagesStoredTotal counts avatar images written to the image store.
// Label:
//   - backend: "file" or "inline"
var ImagesStoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_stored_total",
		Help:      "Total number of avatar images persisted, by storage backend.",
	},
	[]string{"backend"},
)
