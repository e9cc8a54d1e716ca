package scorer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/models"
)

const (
	neutralContentScore = 0.8
	deterministicWeight = 0.3
	judgeWeight         = 0.7
)

const groundingPromptTemplate = `Evaluate how well the response answers the query and whether every claim is grounded in verifiable information.

Query:
%s

Response:
%s

Score from 0 to 10, where 0 means unrelated or fabricated and 10 means fully grounded and complete. Respond with JSON: {"score": <0-10>, "reason": "<one sentence>"}`

// GroundingScorer is the hybrid content scorer: a deterministic
// substring/regex match blended with an LLM-judge groundedness grade.
// With no judge, or an unreachable one, the deterministic component
// stands alone.
type GroundingScorer struct {
	judge Judge
}

// NewGroundingScorer creates the grounding scorer; judge may be nil.
func NewGroundingScorer(judge Judge) *GroundingScorer {
	return &GroundingScorer{judge: judge}
}

// Name implements Scorer.
func (s *GroundingScorer) Name() string { return "grounding" }

// Score implements Scorer.
func (s *GroundingScorer) Score(ctx context.Context, spec *CaseSpec, output *agent.AgentOutput) (models.ScoreDetail, error) {
	detScore, evidence := s.deterministic(spec, output.Output)

	if s.judge == nil {
		evidence = append(evidence, "no judge configured, deterministic score only")
		return models.ScoreDetail{
			Score:    clamp(detScore),
			Reason:   fmt.Sprintf("deterministic content score %.2f", detScore),
			Evidence: evidence,
		}, nil
	}

	prompt := fmt.Sprintf(groundingPromptTemplate, spec.Query, output.Output)
	verdict, err := s.judge.Evaluate(ctx, prompt)
	if err != nil {
		evidence = append(evidence, fmt.Sprintf("judge unavailable (%v), fell back to deterministic score", err))
		return models.ScoreDetail{
			Score:    clamp(detScore),
			Reason:   fmt.Sprintf("deterministic content score %.2f (judge fallback)", detScore),
			Evidence: evidence,
		}, nil
	}

	judgeScore := clamp(verdict.Score / 10)
	final := deterministicWeight*detScore + judgeWeight*judgeScore
	evidence = append(evidence,
		fmt.Sprintf("deterministic: %.2f", detScore),
		fmt.Sprintf("judge: %.2f (%s)", judgeScore, verdict.Reason),
	)
	return models.ScoreDetail{
		Score:    clamp(final),
		Reason:   fmt.Sprintf("0.3 x %.2f deterministic + 0.7 x %.2f judge", detScore, judgeScore),
		Evidence: evidence,
	}, nil
}

// deterministic checks each expected substring case-insensitively and
// the expected pattern as a case-insensitive regex search. An invalid
// pattern counts as a missed expectation.
func (s *GroundingScorer) deterministic(spec *CaseSpec, response string) (float64, []string) {
	var evidence []string
	total := len(spec.ExpectedOutputContains)
	if spec.ExpectedOutputPattern != "" {
		total++
	}
	if total == 0 {
		return neutralContentScore, []string{"no content expectations set, neutral score"}
	}

	matches := 0
	lowered := strings.ToLower(response)
	for _, want := range spec.ExpectedOutputContains {
		if strings.Contains(lowered, strings.ToLower(want)) {
			matches++
			evidence = append(evidence, fmt.Sprintf("contains %q", want))
		} else {
			evidence = append(evidence, fmt.Sprintf("missing %q", want))
		}
	}

	if spec.ExpectedOutputPattern != "" {
		re, err := regexp.Compile("(?i)" + spec.ExpectedOutputPattern)
		if err != nil {
			evidence = append(evidence, fmt.Sprintf("invalid pattern %q: %v", spec.ExpectedOutputPattern, err))
		} else if re.MatchString(response) {
			matches++
			evidence = append(evidence, fmt.Sprintf("pattern %q matched", spec.ExpectedOutputPattern))
		} else {
			evidence = append(evidence, fmt.Sprintf("pattern %q did not match", spec.ExpectedOutputPattern))
		}
	}

	return float64(matches) / float64(total), evidence
}
