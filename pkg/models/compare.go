package models

// ScoreDelta is one (case, scorer) pair present in both compared runs.
type ScoreDelta struct {
	CaseName  string  `json:"case_name"`
	Scorer    string  `json:"scorer"`
	Baseline  float64 `json:"baseline"`
	Candidate float64 `json:"candidate"`
	Delta     float64 `json:"delta"`
}

// CompareResult is the regression report for a (baseline, candidate) pair.
// Regressions are sorted worst-first, improvements best-first.
type CompareResult struct {
	BaselineRunID  string       `json:"baseline_run_id"`
	CandidateRunID string       `json:"candidate_run_id"`
	Threshold      float64      `json:"threshold"`
	OverallDelta   float64      `json:"overall_delta"`
	Passed         bool         `json:"passed"`
	Regressions    []ScoreDelta `json:"regressions"`
	Improvements   []ScoreDelta `json:"improvements"`
	Unchanged      int          `json:"unchanged"`
}

// DashboardStats holds the project dashboard metrics, produced by a
// single SQL round-trip.
type DashboardStats struct {
	TotalRuns    int     `json:"total_runs"`
	PassedRuns   int     `json:"passed_runs"`
	FailedRuns   int     `json:"failed_runs"`
	PassRate     float64 `json:"pass_rate"`
	FailRate     float64 `json:"fail_rate"`
	AvgScore     float64 `json:"avg_score"`
	RunsThisWeek int     `json:"runs_this_week"`
}
