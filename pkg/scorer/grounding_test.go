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

// stubJudge returns a fixed verdict or a transport error.
type stubJudge struct {
	verdict *Verdict
	err     error
	prompts []string
}

func (j *stubJudge) Evaluate(_ context.Context, prompt string) (*Verdict, error) {
	j.prompts = append(j.prompts, prompt)
	if j.err != nil {
		return nil, j.err
	}
	return j.verdict, nil
}

func outputWithText(text string) *agent.AgentOutput {
	return &agent.AgentOutput{Output: text, ToolsCalled: []string{}, Metadata: map[string]interface{}{}}
}

func hasEvidence(detail []string, sub string) bool {
	for _, e := range detail {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}

func TestGrounding_RegexAndContainsBlendedWithJudge(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{Score: 8, Reason: "well grounded"}}
	s := NewGroundingScorer(judge)

	spec := &CaseSpec{
		Query:                  "order status",
		ExpectedOutputPattern:  `ORD-\d{5}`,
		ExpectedOutputContains: []string{"confirmed"},
	}
	detail, err := s.Score(context.Background(), spec, outputWithText("Your order is ORD-54321 confirmed."))
	require.NoError(t, err)
	// deterministic 2/2 = 1.0, judge 0.8: 0.3*1.0 + 0.7*0.8 = 0.86
	assert.InDelta(t, 0.86, detail.Score, 1e-9)
	assert.Len(t, judge.prompts, 1)
	assert.Contains(t, judge.prompts[0], "order status")
}

func TestGrounding_MissedExpectationsLowerDeterministicComponent(t *testing.T) {
	judge := &stubJudge{verdict: &Verdict{Score: 8, Reason: "grounded"}}
	s := NewGroundingScorer(judge)

	spec := &CaseSpec{
		ExpectedOutputPattern:  `ORD-\d{5}`,
		ExpectedOutputContains: []string{"confirmed"},
	}
	detail, err := s.Score(context.Background(), spec, outputWithText("nothing relevant"))
	require.NoError(t, err)
	// deterministic 0/2 = 0.0, judge 0.8: 0.7*0.8 = 0.56
	assert.InDelta(t, 0.56, detail.Score, 1e-9)
}

func TestGrounding_CaseInsensitiveContainsAndPattern(t *testing.T) {
	s := NewGroundingScorer(nil)

	spec := &CaseSpec{ExpectedOutputContains: []string{"PARIS"}}
	detail, err := s.Score(context.Background(), spec, outputWithText("paris is the capital"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)

	spec = &CaseSpec{ExpectedOutputPattern: `ord-\d+`}
	detail, err = s.Score(context.Background(), spec, outputWithText("ORD-12345"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)
}

func TestGrounding_NoExpectationsIsNeutral(t *testing.T) {
	s := NewGroundingScorer(nil)
	detail, err := s.Score(context.Background(), &CaseSpec{}, outputWithText("anything"))
	require.NoError(t, err)
	assert.Equal(t, 0.8, detail.Score)
}

func TestGrounding_InvalidPatternCountsAsMiss(t *testing.T) {
	s := NewGroundingScorer(nil)
	spec := &CaseSpec{
		ExpectedOutputPattern:  `([unclosed`,
		ExpectedOutputContains: []string{"hello"},
	}
	detail, err := s.Score(context.Background(), spec, outputWithText("hello there"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, detail.Score, 1e-9)
	assert.True(t, hasEvidence(detail.Evidence, "invalid pattern"), "evidence: %v", detail.Evidence)
}

func TestGrounding_JudgeFailureFallsBackToDeterministic(t *testing.T) {
	judge := &stubJudge{err: errors.New("connection refused")}
	s := NewGroundingScorer(judge)

	spec := &CaseSpec{ExpectedOutputContains: []string{"paris"}}
	detail, err := s.Score(context.Background(), spec, outputWithText("Paris"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)
	assert.True(t, hasEvidence(detail.Evidence, "fell back"), "evidence: %v", detail.Evidence)
}
