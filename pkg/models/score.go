// Package models defines the value types shared between the services,
// the engine, and the control-plane adapters. Entities live in ent;
// everything here is plain data (de)serialized at the store boundary.
package models

// ScoreDetail is the auditable outcome of a single scorer on a single case.
type ScoreDetail struct {
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
	Evidence []string `json:"evidence,omitempty"`
}

// TraceSummary is extracted from the agent's execution trace by walking
// spans and classifying them by type.
type TraceSummary struct {
	TraceID      string   `json:"trace_id"`
	TotalSpans   int      `json:"total_spans"`
	ToolCalls    []string `json:"tool_calls,omitempty"`
	LLMCalls     int      `json:"llm_calls"`
	InputTokens  int64    `json:"input_tokens"`
	OutputTokens int64    `json:"output_tokens"`
	TotalTokens  int64    `json:"total_tokens"`
	DurationMs   int64    `json:"duration_ms"`
	Status       string   `json:"status"`
	Error        string   `json:"error,omitempty"`
}

// CaseInput is the structured input of a test case.
type CaseInput struct {
	Query   string                 `json:"query"`
	Context map[string]interface{} `json:"context,omitempty"`
}
