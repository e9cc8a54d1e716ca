package scorer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/agent"
)

func output(tools ...string) *agent.AgentOutput {
	return &agent.AgentOutput{Output: "x", ToolsCalled: tools, Metadata: map[string]interface{}{}}
}

func TestToolSelection_ExactMatch(t *testing.T) {
	s := NewToolSelectionScorer()
	detail, err := s.Score(context.Background(), &CaseSpec{ExpectedTools: []string{"web_search"}}, output("web_search"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)
}

func TestToolSelection_NoOverlap(t *testing.T) {
	s := NewToolSelectionScorer()
	detail, err := s.Score(context.Background(), &CaseSpec{ExpectedTools: []string{"web_search"}}, output("code_exec"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.Score)
	assert.Contains(t, detail.Evidence, "missing: [web_search]")
	assert.Contains(t, detail.Evidence, "unexpected: [code_exec]")
}

func TestToolSelection_PartialOverlapIsJaccard(t *testing.T) {
	s := NewToolSelectionScorer()
	detail, err := s.Score(context.Background(),
		&CaseSpec{ExpectedTools: []string{"a", "b"}},
		output("b", "c"))
	require.NoError(t, err)
	// intersection {b}, union {a,b,c}
	assert.InDelta(t, 1.0/3.0, detail.Score, 1e-9)
}

func TestToolSelection_NilExpectationIsNeutral(t *testing.T) {
	s := NewToolSelectionScorer()
	detail, err := s.Score(context.Background(), &CaseSpec{}, output("anything"))
	require.NoError(t, err)
	assert.Equal(t, 0.8, detail.Score)
}

func TestToolSelection_ExplicitlyEmptyExpectation(t *testing.T) {
	s := NewToolSelectionScorer()

	detail, err := s.Score(context.Background(), &CaseSpec{ExpectedTools: []string{}}, output())
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)

	detail, err = s.Score(context.Background(), &CaseSpec{ExpectedTools: []string{}}, output("web_search"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.Score)
}

func TestToolSelection_SetComponentIsOrderInvariant(t *testing.T) {
	s := NewToolSelectionScorer()
	spec := &CaseSpec{ExpectedTools: []string{"a", "b", "c", "d"}}
	tools := []string{"b", "d", "a", "x"}

	base, err := s.Score(context.Background(), spec, output(tools...))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), tools...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		detail, err := s.Score(context.Background(), spec, output(shuffled...))
		require.NoError(t, err)
		assert.Equal(t, base.Score, detail.Score)
	}
}

func TestToolSelection_SequenceAveragedIn(t *testing.T) {
	s := NewToolSelectionScorer()
	spec := &CaseSpec{
		ExpectedTools:        []string{"a", "b"},
		ExpectedToolSequence: []string{"a", "b"},
	}

	detail, err := s.Score(context.Background(), spec, output("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, detail.Score)

	// Reversed order: set is perfect, LCS is 1 of 2.
	detail, err = s.Score(context.Background(), spec, output("b", "a"))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, detail.Score, 1e-9)
}

func TestLCSSimilarity_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		expected []string
		actual   []string
		want     float64
	}{
		{"both empty", nil, nil, 1.0},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, 1.0},
		{"disjoint", []string{"a"}, []string{"b"}, 0.0},
		{"subsequence", []string{"a", "b", "c"}, []string{"a", "c"}, 2.0 / 3.0},
		{"actual longer", []string{"a"}, []string{"x", "a", "y"}, 1.0 / 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lcsSimilarity(tc.expected, tc.actual)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestLCSSimilarity_OneOnlyWhenEqual(t *testing.T) {
	expected := []string{"a", "b", "c"}
	notEqual := [][]string{
		{"a", "b"},
		{"a", "b", "c", "d"},
		{"c", "b", "a"},
	}
	for _, actual := range notEqual {
		assert.Less(t, lcsSimilarity(expected, actual), 1.0)
	}
	assert.Equal(t, 1.0, lcsSimilarity(expected, []string{"a", "b", "c"}))
}
