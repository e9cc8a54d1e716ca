package trace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/agent"
)

func TestExecuteTraced_Success(t *testing.T) {
	client := NewClient(ExperimentForLocalSuite("smoke"))
	defer func() { _ = client.Shutdown(context.Background()) }()

	ag := agent.Func(func(ctx context.Context, query string, _ map[string]interface{}) (*agent.AgentOutput, error) {
		toolCtx, toolSpan := StartToolSpan(ctx, "search")
		toolSpan.End()

		_, llmSpan := StartLLMSpan(toolCtx, "gpt-4o-mini")
		RecordTokens(llmSpan, 120, 40)
		llmSpan.End()

		return &agent.AgentOutput{Output: "done: " + query, ToolsCalled: []string{"search"}}, nil
	})

	result := client.ExecuteTraced(context.Background(), ag, "q", nil, "case-1", map[string]string{"neon.case": "case-1"}, time.Second)

	assert.Equal(t, "success", result.Status)
	require.NotNil(t, result.Output)
	assert.Equal(t, "done: q", result.Output.Output)
	assert.NotEmpty(t, result.TraceRunID)
	assert.NotEmpty(t, result.TraceID)

	require.NotNil(t, result.TraceSummary)
	assert.Equal(t, 3, result.TraceSummary.TotalSpans)
	assert.Equal(t, []string{"search"}, result.TraceSummary.ToolCalls)
	assert.Equal(t, 1, result.TraceSummary.LLMCalls)
	assert.Equal(t, int64(120), result.TraceSummary.InputTokens)
	assert.Equal(t, int64(40), result.TraceSummary.OutputTokens)
	assert.Equal(t, int64(160), result.TraceSummary.TotalTokens)
	assert.Equal(t, "success", result.TraceSummary.Status)
}

func TestExecuteTraced_Timeout(t *testing.T) {
	client := NewClient(ExperimentForLocalSuite("smoke"))
	defer func() { _ = client.Shutdown(context.Background()) }()

	ag := agent.Func(func(ctx context.Context, _ string, _ map[string]interface{}) (*agent.AgentOutput, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return &agent.AgentOutput{Output: "too late"}, nil
		}
	})

	result := client.ExecuteTraced(context.Background(), ag, "q", nil, "case-1", nil, 20*time.Millisecond)

	assert.Equal(t, "error", result.Status)
	require.Error(t, result.Err)
	assert.True(t, errors.Is(result.Err, context.DeadlineExceeded))
	assert.Nil(t, result.Output)
}

func TestExecuteTraced_AgentError(t *testing.T) {
	client := NewClient(ExperimentForLocalSuite("smoke"))
	defer func() { _ = client.Shutdown(context.Background()) }()

	ag := agent.Func(func(_ context.Context, _ string, _ map[string]interface{}) (*agent.AgentOutput, error) {
		return nil, errors.New("backend unavailable")
	})

	result := client.ExecuteTraced(context.Background(), ag, "q", nil, "case-1", nil, time.Second)

	assert.Equal(t, "error", result.Status)
	assert.EqualError(t, result.Err, "backend unavailable")
	require.NotNil(t, result.TraceSummary)
	assert.Equal(t, "error", result.TraceSummary.Status)
	assert.Equal(t, "backend unavailable", result.TraceSummary.Error)
}

func TestExecuteTraced_AgentPanicIsContained(t *testing.T) {
	client := NewClient(ExperimentForLocalSuite("smoke"))
	defer func() { _ = client.Shutdown(context.Background()) }()

	ag := agent.Func(func(_ context.Context, _ string, _ map[string]interface{}) (*agent.AgentOutput, error) {
		panic("boom")
	})

	result := client.ExecuteTraced(context.Background(), ag, "q", nil, "case-1", nil, time.Second)

	assert.Equal(t, "error", result.Status)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "boom")
}

func TestExecuteTraced_TracesDoNotLeakBetweenCases(t *testing.T) {
	client := NewClient(ExperimentForLocalSuite("smoke"))
	defer func() { _ = client.Shutdown(context.Background()) }()

	ag := agent.Func(func(ctx context.Context, _ string, _ map[string]interface{}) (*agent.AgentOutput, error) {
		_, span := StartToolSpan(ctx, "lookup")
		span.End()
		return &agent.AgentOutput{Output: "ok"}, nil
	})

	first := client.ExecuteTraced(context.Background(), ag, "q1", nil, "case-1", nil, time.Second)
	second := client.ExecuteTraced(context.Background(), ag, "q2", nil, "case-2", nil, time.Second)

	require.NotNil(t, first.TraceSummary)
	require.NotNil(t, second.TraceSummary)
	assert.NotEqual(t, first.TraceID, second.TraceID)
	assert.Equal(t, 2, first.TraceSummary.TotalSpans)
	assert.Equal(t, 2, second.TraceSummary.TotalSpans)
}
