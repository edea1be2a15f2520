// Package metrics defines the Prometheus metrics for identity generation and
// the daily reset. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rebirth"

// Lookup results
const (
	LookupHit      = "hit"
	LookupCreated  = "created"
	LookupConflict = "conflict"
	LookupError    = "error"
)

// Reset results
const (
	ResetSuccess = "success"
	ResetFailure = "failure"
)

// IdentityLookupsTotal counts get-or-create calls.
// Label:
//   - result: hit, created, conflict (lost a creation race) or error
var IdentityLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_lookups_total",
		Help:      "Total number of identity get-or-create calls, labelled by result.",
	},
	[]string{"result"},
)

// ResetsTotal counts scheduled resets.
// Label:
//   - result: success or failure
var ResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resets_total",
		Help:      "Total number of scheduled identity resets, labelled by result.",
	},
	[]string{"result"},
)

// IdentitiesClearedTotal counts identities removed by resets
var IdentitiesClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identities_cleared_total",
		Help:      "Total number of identities removed by scheduled resets.",
	},
)

// NextResetTimestamp is the unix time the scheduler is armed for
var NextResetTimestamp = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "next_reset_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled identity reset.",
	},
)

// HTTPRequestDuration observes API request latency.
// Labels:
//   - method: HTTP method
//   - route: mux path template, e.g. /api/v1/identities/{user_key}
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
