// Package metrics exposes the engine's Prometheus instrumentation.
// Collectors register on the default registry; the HTTP server serves
// them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsStarted counts runs claimed for execution.
	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "neon_runs_started_total",
		Help: "Runs claimed for execution.",
	})

	// RunsFinished counts runs reaching a terminal state, by status.
	RunsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neon_runs_finished_total",
		Help: "Runs reaching a terminal state.",
	}, []string{"status"})

	// CasesExecuted counts case executions by result status.
	CasesExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neon_cases_executed_total",
		Help: "Case executions by result status.",
	}, []string{"status"})

	// CaseDuration observes wall-clock case execution time.
	CaseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "neon_case_duration_seconds",
		Help:    "Wall-clock case execution time.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	// ScorerFailures counts scorer errors by scorer name.
	ScorerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "neon_scorer_failures_total",
		Help: "Scorer invocations that returned an error.",
	}, []string{"scorer"})

	// StaleRunsFailed counts runs the sweeper marked failed.
	StaleRunsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "neon_stale_runs_failed_total",
		Help: "Orphaned runs marked failed by the sweeper.",
	})
)
