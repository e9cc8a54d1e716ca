package models

import "time"

// CreateProjectRequest creates a new project (tenant boundary).
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// CreateSuiteRequest creates a suite inside a project.
type CreateSuiteRequest struct {
	Name                  string   `json:"name" binding:"required"`
	AgentID               string   `json:"agent_id" binding:"required"`
	Description           string   `json:"description"`
	Parallel              *bool    `json:"parallel"`
	StopOnFailure         *bool    `json:"stop_on_failure"`
	DefaultScorers        []string `json:"default_scorers"`
	DefaultMinScore       *float64 `json:"default_min_score"`
	DefaultTimeoutSeconds *int     `json:"default_timeout_seconds"`
}

// UpdateSuiteRequest mutates suite attributes; nil fields are untouched.
type UpdateSuiteRequest struct {
	Name                  *string  `json:"name"`
	AgentID               *string  `json:"agent_id"`
	Description           *string  `json:"description"`
	Parallel              *bool    `json:"parallel"`
	StopOnFailure         *bool    `json:"stop_on_failure"`
	DefaultScorers        []string `json:"default_scorers"`
	DefaultMinScore       *float64 `json:"default_min_score"`
	DefaultTimeoutSeconds *int     `json:"default_timeout_seconds"`
}

// CreateCaseRequest creates a test case inside a suite. Pointer slices
// preserve the null-vs-empty distinction the tool-selection scorer needs.
type CreateCaseRequest struct {
	Name                   string                 `json:"name" binding:"required"`
	Description            string                 `json:"description"`
	Input                  CaseInput              `json:"input"`
	ExpectedTools          *[]string              `json:"expected_tools"`
	ExpectedToolSequence   *[]string              `json:"expected_tool_sequence"`
	ExpectedOutputContains *[]string              `json:"expected_output_contains"`
	ExpectedOutputPattern  string                 `json:"expected_output_pattern"`
	Scorers                []string               `json:"scorers"`
	ScorerConfig           map[string]interface{} `json:"scorer_config"`
	MinScore               *float64               `json:"min_score"`
	TimeoutSeconds         *int                   `json:"timeout_seconds"`
	Tags                   []string               `json:"tags"`
}

// UpdateCaseRequest mutates case attributes; nil fields are untouched.
type UpdateCaseRequest struct {
	Name                   *string                `json:"name"`
	Description            *string                `json:"description"`
	Input                  *CaseInput             `json:"input"`
	ExpectedTools          *[]string              `json:"expected_tools"`
	ExpectedToolSequence   *[]string              `json:"expected_tool_sequence"`
	ExpectedOutputContains *[]string              `json:"expected_output_contains"`
	ExpectedOutputPattern  *string                `json:"expected_output_pattern"`
	Scorers                []string               `json:"scorers"`
	ScorerConfig           map[string]interface{} `json:"scorer_config"`
	MinScore               *float64               `json:"min_score"`
	TimeoutSeconds         *int                   `json:"timeout_seconds"`
	Tags                   []string               `json:"tags"`
}

// CreateRunRequest creates a pending run for a suite.
type CreateRunRequest struct {
	SuiteID      string     `json:"suite_id" binding:"required"`
	AgentVersion string     `json:"agent_version"`
	Trigger      string     `json:"trigger"`
	TriggerRef   string     `json:"trigger_ref"`
	Config       *RunConfig `json:"config"`
}

// ListRunsParams filters and paginates run listings.
type ListRunsParams struct {
	SuiteID string
	Status  string
	Limit   int
	Offset  int
}

// ListRunsResponse is a page of runs plus the unpaginated total.
type ListRunsResponse struct {
	Runs       interface{} `json:"runs"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// DashboardParams bounds the dashboard aggregation window.
// RunsThisWeek is always computed over the trailing 7 days regardless.
type DashboardParams struct {
	From *time.Time
	To   *time.Time
}
