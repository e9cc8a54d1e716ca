package models

// RunSummary is the aggregate outcome of a run, recomputed from the
// persisted results after all scheduled cases finish.
//
// TotalCases = Passed + Failed + Errored. Failed counts successful
// executions whose aggregate score fell below the case threshold;
// Errored counts error/timeout executions.
//
// The json keys are load-bearing: the dashboard aggregation reaches into
// this document with SQL-level JSON projection (summary->>'avg_score').
type RunSummary struct {
	TotalCases      int                `json:"total_cases"`
	Passed          int                `json:"passed"`
	Failed          int                `json:"failed"`
	Errored         int                `json:"errored"`
	AvgScore        float64            `json:"avg_score"`
	ScoresByType    map[string]float64 `json:"scores_by_type,omitempty"`
	ExecutionTimeMs int64              `json:"execution_time_ms"`
	Error           string             `json:"error,omitempty"`
}

// RunConfig carries per-run overrides of the suite configuration.
// Nil pointers mean "use the suite's value".
type RunConfig struct {
	Parallel         *bool `json:"parallel,omitempty"`
	StopOnFailure    *bool `json:"stop_on_failure,omitempty"`
	MaxParallelCases *int  `json:"max_parallel_cases,omitempty"`
}
