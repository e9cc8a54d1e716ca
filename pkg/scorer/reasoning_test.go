package scorer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/agent"
)

func TestReasoning_WeightedRubricFromSubScores(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{
		Score:  8,
		Reason: "coherent",
		SubScores: map[string]float64{
			"logical_coherence":     3,
			"information_usage":     3,
			"problem_decomposition": 1,
			"completeness":          2,
		},
		Strengths:  []string{"clear steps", "cites sources"},
		Weaknesses: []string{"skips an edge case"},
	}}
	s := NewReasoningScorer(judge)

	detail, err := s.Score(context.Background(), &CaseSpec{Query: "q"}, outputWithText("a long and thorough answer"))
	require.NoError(t, err)
	// 0.3*1 + 0.3*1 + 0.2*0.5 + 0.2*1 = 0.9
	assert.InDelta(t, 0.9, detail.Score, 1e-9)
	assert.True(t, hasEvidence(detail.Evidence, "strength: clear steps"))
	assert.True(t, hasEvidence(detail.Evidence, "weakness: skips an edge case"))
	assert.True(t, hasEvidence(detail.Evidence, "completeness: 2.0"))
}

func TestReasoning_MissingSubScoresUsesOverallScore(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{Score: 7, Reason: "fine"}}
	s := NewReasoningScorer(judge)

	detail, err := s.Score(context.Background(), &CaseSpec{}, outputWithText("answer"))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, detail.Score, 1e-9)
}

func TestReasoning_CustomRubricFromConfig(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{
		Score:     5,
		Reason:    "ok",
		SubScores: map[string]float64{"accuracy": 4},
	}}
	s := NewReasoningScorer(judge)

	spec := &CaseSpec{
		ScorerConfig: map[string]interface{}{
			"rubric": map[string]interface{}{
				"accuracy": map[string]interface{}{"weight": 1.0, "max_points": 5.0},
			},
		},
	}
	detail, err := s.Score(context.Background(), spec, outputWithText("answer"))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, detail.Score, 1e-9)
}

func TestReasoning_PromptCarriesRubricAndTools(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{Score: 5, Reason: "ok"}}
	s := NewReasoningScorer(judge)

	out := outputWithText("answer")
	out.ToolsCalled = []string{"web_search", "calculator"}
	_, err := s.Score(context.Background(), &CaseSpec{Query: "how many"}, out)
	require.NoError(t, err)

	require.Len(t, judge.prompts, 1)
	prompt := judge.prompts[0]
	assert.Contains(t, prompt, "logical_coherence")
	assert.Contains(t, prompt, "web_search, calculator")
	assert.Contains(t, prompt, "how many")
}

func TestReasoning_HeuristicWhenJudgeUnavailable(t *testing.T) {
	s := NewReasoningScorer(&stubJudge{err: errors.New("timeout")})

	short, err := s.Score(context.Background(), &CaseSpec{}, outputWithText("no"))
	require.NoError(t, err)
	assert.InDelta(t, 0.3, short.Score, 1e-9)

	long, err := s.Score(context.Background(), &CaseSpec{}, outputWithText(strings.Repeat("thorough ", 30)))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, long.Score, 1e-9)

	withTools := outputWithText(strings.Repeat("thorough ", 30))
	withTools.ToolsCalled = []string{"web_search"}
	toolScore, err := s.Score(context.Background(), &CaseSpec{}, withTools)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, toolScore.Score, 1e-9)
}

func TestReasoning_HeuristicWhenNoJudgeConfigured(t *testing.T) {
	s := NewReasoningScorer(nil)

	detail, err := s.Score(context.Background(), &CaseSpec{}, outputWithText("a medium length answer here"))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, detail.Score, 1e-9)
	assert.True(t, hasEvidence(detail.Evidence, "no judge configured"))
}

func TestDefaultRegistry_Names(t *testing.T) {
	registry := NewDefaultRegistry(nil)
	for _, name := range []string{"tool_selection", "grounding", "reasoning"} {
		_, ok := registry.Get(name)
		assert.True(t, ok, "missing scorer %s", name)
	}
	_, ok := registry.Get("typo_scorer")
	assert.False(t, ok)
}

func TestScorersNeverMutateOutput(t *testing.T) {
	registry := NewDefaultRegistry(nil)
	out := &agent.AgentOutput{Output: "Paris", ToolsCalled: []string{"web_search"}, Metadata: map[string]interface{}{}}
	spec := &CaseSpec{ExpectedTools: []string{"web_search"}, ExpectedOutputContains: []string{"Paris"}}

	for _, name := range registry.Names() {
		s, _ := registry.Get(name)
		_, err := s.Score(context.Background(), spec, out)
		require.NoError(t, err)
	}
	assert.Equal(t, "Paris", out.Output)
	assert.Equal(t, []string{"web_search"}, out.ToolsCalled)
}
