// Package metrics defines and registers the custom Prometheus metrics of the
// candidate search API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resumatch"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts search requests.
// Label:
//   - outcome: "hit" (at least one result), "empty" or "error"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of candidate searches, by outcome.",
	},
	[]string{"outcome"},
)

// SearchResults observes how many results a successful search returned.
var SearchResults = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of results returned per search.",
		Buckets:   []float64{0, 1, 2, 3, 4, 5},
	},
)

// SearchDuration measures search latency including remote calls.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of a candidate search.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Candidate metrics ─────────────────────────────────────────────────────────

// UploadsTotal counts upload attempts.
// Label:
//   - result: "accepted", "rejected" (validation) or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of resume uploads, by result.",
	},
	[]string{"result"},
)

// ── Access metrics ────────────────────────────────────────────────────────────

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

// AccessDecisionsTotal counts route guard decisions.
// Labels:
//   - path: the guarded route (e.g. "/search")
//   - decision: "allow" or "redirect"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of route guard decisions, by path and decision.",
	},
	[]string{"path", "decision"},
)

// RecordAccess increments AccessDecisionsTotal for one decision.
func RecordAccess(path string, allowed bool) {
	decision := "redirect"
	if allowed {
		decision = "allow"
	}
	AccessDecisionsTotal.WithLabelValues(path, decision).Inc()
}
