package suiteio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownScorers = []string{"tool_selection", "grounding", "reasoning"}

const validSuite = `
name: capital-cities
description: geography smoke tests
agent_id: acme.agents:Geo
default_scorers: [tool_selection, grounding]
default_min_score: 0.6
parallel: false
stop_on_failure: true
cases:
  - name: france
    input:
      query: What is the capital of France?
    expected_tools: [web_search]
    expected_output_contains: [Paris]
  - name: no-tools
    input:
      query: Say hello
    expected_tools: []
    scorers: [tool_selection]
    min_score: 0.9
    tags: [smoke]
`

func TestLoad_ValidSuite(t *testing.T) {
	sf, err := Load([]byte(validSuite), knownScorers)
	require.NoError(t, err)

	assert.Equal(t, "capital-cities", sf.Name)
	assert.Equal(t, "acme.agents:Geo", sf.AgentID)
	require.NotNil(t, sf.Parallel)
	assert.False(t, *sf.Parallel)
	require.NotNil(t, sf.StopOnFailure)
	assert.True(t, *sf.StopOnFailure)
	require.Len(t, sf.Cases, 2)
}

func TestLoad_OmittedVsEmptyExpectations(t *testing.T) {
	sf, err := Load([]byte(validSuite), knownScorers)
	require.NoError(t, err)

	requests := sf.CaseRequests()
	require.Len(t, requests, 2)

	// Case 1 never mentions expected_tool_sequence; case 2 sets
	// expected_tools to an explicit empty list.
	assert.NotNil(t, requests[0].ExpectedTools)
	assert.Nil(t, requests[0].ExpectedToolSequence)
	require.NotNil(t, requests[1].ExpectedTools)
	assert.Empty(t, *requests[1].ExpectedTools)
}

func TestLoad_DefaultsFlowIntoCases(t *testing.T) {
	sf, err := Load([]byte(validSuite), knownScorers)
	require.NoError(t, err)

	requests := sf.CaseRequests()

	// Case 1 inherits suite defaults; case 2 overrides them.
	assert.Equal(t, []string{"tool_selection", "grounding"}, requests[0].Scorers)
	require.NotNil(t, requests[0].MinScore)
	assert.Equal(t, 0.6, *requests[0].MinScore)

	assert.Equal(t, []string{"tool_selection"}, requests[1].Scorers)
	require.NotNil(t, requests[1].MinScore)
	assert.Equal(t, 0.9, *requests[1].MinScore)
}

func TestLoad_CollectsLineReferencedIssues(t *testing.T) {
	const broken = `
name: ""
agent_id: acme.agents:Geo
default_min_score: 1.5
cases:
  - name: dup
    input:
      query: q
  - name: dup
    input:
      query: q
    min_score: -0.1
  - name: no-query
    input:
      context: {k: v}
    expected_output_pattern: "([unclosed"
`
	_, err := Load([]byte(broken), knownScorers)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)

	byField := map[string]ValidationIssue{}
	for _, issue := range verr.Issues {
		byField[issue.Field] = issue
	}
	assert.Contains(t, byField, "name")
	assert.Contains(t, byField, "default_min_score")
	assert.Contains(t, byField, "cases[1].name")
	assert.Contains(t, byField, "cases[1].min_score")
	assert.Contains(t, byField, "cases[2].input.query")
	assert.Contains(t, byField, "cases[2].expected_output_pattern")

	assert.Equal(t, 4, byField["default_min_score"].Line)
	assert.Greater(t, byField["cases[1].name"].Line, byField["cases[0].name"].Line)
	assert.Contains(t, byField["cases[1].name"].Message, "duplicate")
}

func TestLoad_UnknownScorerRejected(t *testing.T) {
	const typo = `
name: s
agent_id: a.b:C
cases:
  - name: c1
    input:
      query: q
    scorers: [tool_selektion]
`
	_, err := Load([]byte(typo), knownScorers)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Contains(t, verr.Issues[0].Message, "tool_selektion")
}

func TestLoad_NilKnownScorersSkipsCheck(t *testing.T) {
	const custom = `
name: s
agent_id: a.b:C
cases:
  - name: c1
    input:
      query: q
    scorers: [house_scorer]
`
	_, err := Load([]byte(custom), nil)
	assert.NoError(t, err)
}

func TestLoad_EmptyCases(t *testing.T) {
	const empty = `
name: s
agent_id: a.b:C
cases: []
`
	_, err := Load([]byte(empty), knownScorers)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "cases", verr.Issues[0].Field)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load([]byte("name: [unclosed"), knownScorers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}
