package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_PlainJSON(t *testing.T) {
	verdict := ParseVerdict(`{"score": 7, "reason": "solid"}`)
	assert.Equal(t, 7.0, verdict.Score)
	assert.Equal(t, "solid", verdict.Reason)
}

func TestParseVerdict_ExtractsFirstBalancedObject(t *testing.T) {
	response := "Sure! Here is my evaluation:\n```json\n{\"score\": 9, \"reason\": \"great\"}\n```\nHope that helps."
	verdict := ParseVerdict(response)
	assert.Equal(t, 9.0, verdict.Score)
	assert.Equal(t, "great", verdict.Reason)
}

func TestParseVerdict_NestedObjectsAndBracesInStrings(t *testing.T) {
	response := `{"score": 6, "reason": "uses {braces} and \"quotes\"", "sub_scores": {"completeness": 2}}`
	verdict := ParseVerdict(response)
	assert.Equal(t, 6.0, verdict.Score)
	require.Contains(t, verdict.SubScores, "completeness")
	assert.Equal(t, 2.0, verdict.SubScores["completeness"])
}

func TestParseVerdict_NoJSONYieldsNeutral(t *testing.T) {
	verdict := ParseVerdict("I would rate this an 8 out of 10.")
	assert.Equal(t, 5.0, verdict.Score)
	assert.Contains(t, verdict.Reason, "no JSON object")
}

func TestParseVerdict_MalformedJSONYieldsNeutral(t *testing.T) {
	verdict := ParseVerdict(`{"score": "not a number", "reason": 5}`)
	assert.Equal(t, 5.0, verdict.Score)
	assert.Contains(t, verdict.Reason, "malformed")
}

func TestParseVerdict_OutOfRangeScoreYieldsNeutral(t *testing.T) {
	for _, response := range []string{`{"score": 11, "reason": "x"}`, `{"score": -1, "reason": "x"}`} {
		verdict := ParseVerdict(response)
		assert.Equal(t, 5.0, verdict.Score)
		assert.Contains(t, verdict.Reason, "outside")
	}
}
