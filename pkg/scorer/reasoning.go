package scorer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/models"
)

// rubricCriterion is one weighted dimension of the reasoning rubric.
type rubricCriterion struct {
	Name      string
	Weight    float64
	MaxPoints float64
}

// defaultRubric is applied unless scorer_config.rubric overrides it.
// Weights sum to 1.
var defaultRubric = []rubricCriterion{
	{Name: "logical_coherence", Weight: 0.30, MaxPoints: 3},
	{Name: "information_usage", Weight: 0.30, MaxPoints: 3},
	{Name: "problem_decomposition", Weight: 0.20, MaxPoints: 2},
	{Name: "completeness", Weight: 0.20, MaxPoints: 2},
}

const reasoningPromptTemplate = `Grade the reasoning quality of this agent response.

Query:
%s

Response:
%s

Tools used: [%s]

Score each criterion:
%s

Respond with JSON:
{"score": <overall 0-10>, "reason": "<one sentence>", "sub_scores": {%s}, "strengths": ["..."], "weaknesses": ["..."]}
List up to three strengths and three weaknesses.`

// ReasoningScorer grades reasoning quality with an LLM judge over a
// weighted rubric, falling back to a length-and-tool-use heuristic when
// the judge is absent or unreachable.
type ReasoningScorer struct {
	judge Judge
}

// NewReasoningScorer creates the reasoning scorer; judge may be nil.
func NewReasoningScorer(judge Judge) *ReasoningScorer {
	return &ReasoningScorer{judge: judge}
}

// Name implements Scorer.
func (s *ReasoningScorer) Name() string { return "reasoning" }

// Score implements Scorer.
func (s *ReasoningScorer) Score(ctx context.Context, spec *CaseSpec, output *agent.AgentOutput) (models.ScoreDetail, error) {
	rubric := rubricFromConfig(spec.ScorerConfig)

	if s.judge == nil {
		return s.heuristic(output, "no judge configured"), nil
	}

	prompt := renderReasoningPrompt(spec.Query, output, rubric)
	verdict, err := s.judge.Evaluate(ctx, prompt)
	if err != nil {
		return s.heuristic(output, fmt.Sprintf("judge unavailable: %v", err)), nil
	}

	score, evidence := scoreFromVerdict(verdict, rubric)
	return models.ScoreDetail{
		Score:    clamp(score),
		Reason:   verdict.Reason,
		Evidence: evidence,
	}, nil
}

// heuristic is the deterministic fallback: 0.5 baseline adjusted for
// response length and tool use.
func (s *ReasoningScorer) heuristic(output *agent.AgentOutput, cause string) models.ScoreDetail {
	score := 0.5
	length := len(strings.TrimSpace(output.Output))
	switch {
	case length < 20:
		score -= 0.2
	case length >= 200:
		score += 0.2
	default:
		score += 0.1
	}
	if len(output.ToolsCalled) > 0 {
		score += 0.1
	}
	return models.ScoreDetail{
		Score:  clamp(score),
		Reason: "heuristic reasoning score (length and tool use)",
		Evidence: []string{
			cause,
			fmt.Sprintf("response length: %d", length),
			fmt.Sprintf("tools used: %d", len(output.ToolsCalled)),
		},
	}
}

// scoreFromVerdict computes the weighted rubric score when the judge
// returned every sub-score, otherwise normalizes the overall 0-10 score.
func scoreFromVerdict(verdict *Verdict, rubric []rubricCriterion) (float64, []string) {
	var evidence []string
	for _, strength := range capList(verdict.Strengths, 3) {
		evidence = append(evidence, "strength: "+strength)
	}
	for _, weakness := range capList(verdict.Weaknesses, 3) {
		evidence = append(evidence, "weakness: "+weakness)
	}

	subNames := make([]string, 0, len(verdict.SubScores))
	for name := range verdict.SubScores {
		subNames = append(subNames, name)
	}
	sort.Strings(subNames)
	for _, name := range subNames {
		evidence = append(evidence, fmt.Sprintf("%s: %.1f", name, verdict.SubScores[name]))
	}

	complete := len(verdict.SubScores) > 0
	for _, criterion := range rubric {
		if _, ok := verdict.SubScores[criterion.Name]; !ok {
			complete = false
			break
		}
	}
	if !complete {
		return verdict.Score / 10, evidence
	}

	weighted := 0.0
	for _, criterion := range rubric {
		sub := verdict.SubScores[criterion.Name]
		if criterion.MaxPoints > 0 {
			weighted += criterion.Weight * clamp(sub/criterion.MaxPoints)
		}
	}
	return weighted, evidence
}

// rubricFromConfig reads scorer_config.rubric, a map of criterion name
// to {weight, max_points}. Malformed entries are dropped; an empty
// result falls back to the default rubric.
func rubricFromConfig(config map[string]interface{}) []rubricCriterion {
	raw, ok := config["rubric"].(map[string]interface{})
	if !ok {
		return defaultRubric
	}

	var rubric []rubricCriterion
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry, ok := raw[name].(map[string]interface{})
		if !ok {
			continue
		}
		weight, wok := toFloat(entry["weight"])
		maxPoints, mok := toFloat(entry["max_points"])
		if !wok || !mok || weight < 0 || weight > 1 || maxPoints <= 0 {
			continue
		}
		rubric = append(rubric, rubricCriterion{Name: name, Weight: weight, MaxPoints: maxPoints})
	}
	if len(rubric) == 0 {
		return defaultRubric
	}
	return rubric
}

func renderReasoningPrompt(query string, output *agent.AgentOutput, rubric []rubricCriterion) string {
	var criteria []string
	var subKeys []string
	for _, criterion := range rubric {
		criteria = append(criteria, fmt.Sprintf("- %s (0-%g points)", criterion.Name, criterion.MaxPoints))
		subKeys = append(subKeys, fmt.Sprintf("%q: <0-%g>", criterion.Name, criterion.MaxPoints))
	}
	return fmt.Sprintf(reasoningPromptTemplate,
		query,
		output.Output,
		strings.Join(output.ToolsCalled, ", "),
		strings.Join(criteria, "\n"),
		strings.Join(subKeys, ", "),
	)
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
