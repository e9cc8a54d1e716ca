package scorer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/models"
)

// neutralSetScore applies when the case expresses no tool expectation.
const neutralSetScore = 0.8

// ToolSelectionScorer grades tool usage deterministically: a Jaccard
// similarity on the tool set, optionally averaged with an LCS similarity
// on the tool sequence.
type ToolSelectionScorer struct{}

// NewToolSelectionScorer creates the tool_selection scorer.
func NewToolSelectionScorer() *ToolSelectionScorer {
	return &ToolSelectionScorer{}
}

// Name implements Scorer.
func (s *ToolSelectionScorer) Name() string { return "tool_selection" }

// Score implements Scorer.
func (s *ToolSelectionScorer) Score(_ context.Context, spec *CaseSpec, output *agent.AgentOutput) (models.ScoreDetail, error) {
	actual := output.ToolsCalled
	evidence := []string{fmt.Sprintf("tools called: [%s]", strings.Join(actual, ", "))}

	var setScore float64
	switch {
	case spec.ExpectedTools == nil:
		setScore = neutralSetScore
		evidence = append(evidence, "no tool expectation set, neutral set score")
	case len(spec.ExpectedTools) == 0:
		if len(actual) == 0 {
			setScore = 1.0
			evidence = append(evidence, "expected no tools and none were called")
		} else {
			setScore = 0.0
			evidence = append(evidence, "expected no tools but some were called")
		}
	default:
		var missing, extra []string
		setScore, missing, extra = jaccard(spec.ExpectedTools, actual)
		if len(missing) > 0 {
			evidence = append(evidence, fmt.Sprintf("missing: [%s]", strings.Join(missing, ", ")))
		}
		if len(extra) > 0 {
			evidence = append(evidence, fmt.Sprintf("unexpected: [%s]", strings.Join(extra, ", ")))
		}
	}

	score := setScore
	if spec.ExpectedToolSequence != nil {
		seqScore := lcsSimilarity(spec.ExpectedToolSequence, actual)
		evidence = append(evidence, fmt.Sprintf("sequence similarity: %.2f", seqScore))
		score = (setScore + seqScore) / 2
	}

	reason := fmt.Sprintf("set score %.2f", setScore)
	if spec.ExpectedToolSequence != nil {
		reason = fmt.Sprintf("set score %.2f, sequence considered", setScore)
	}

	return models.ScoreDetail{
		Score:    clamp(score),
		Reason:   reason,
		Evidence: evidence,
	}, nil
}

// jaccard computes |expected ∩ actual| / |expected ∪ actual| over the
// deduplicated tool sets, plus the missing and extra tools sorted.
func jaccard(expected, actual []string) (score float64, missing, extra []string) {
	expectedSet := toSet(expected)
	actualSet := toSet(actual)

	intersection := 0
	for tool := range expectedSet {
		if actualSet[tool] {
			intersection++
		} else {
			missing = append(missing, tool)
		}
	}
	for tool := range actualSet {
		if !expectedSet[tool] {
			extra = append(extra, tool)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	union := len(expectedSet) + len(actualSet) - intersection
	if union == 0 {
		return 1.0, nil, nil
	}
	return float64(intersection) / float64(union), missing, extra
}

// lcsSimilarity is lcs_len(a, b) / max(len(a), len(b)); 1.0 for two
// empty sequences.
func lcsSimilarity(expected, actual []string) float64 {
	longest := len(expected)
	if len(actual) > longest {
		longest = len(actual)
	}
	if longest == 0 {
		return 1.0
	}
	return float64(lcsLength(expected, actual)) / float64(longest)
}

func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
