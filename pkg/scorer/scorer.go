// Package scorer implements the rule-based and LLM-judge scorers plus
// the name-keyed registry the engine resolves them from.
package scorer

import (
	"context"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/models"
)

// CaseSpec is the scorer-facing view of a test case. Nil and empty
// slices are distinct: nil means the expectation was never set, an empty
// slice means it was set to "explicitly nothing".
type CaseSpec struct {
	Name                   string
	Query                  string
	ExpectedTools          []string
	ExpectedToolSequence   []string
	ExpectedOutputContains []string
	ExpectedOutputPattern  string
	ScorerConfig           map[string]interface{}
	MinScore               float64
}

// Scorer evaluates one agent output against one case. Implementations
// are stateless; the same scorer value is shared across concurrent cases.
type Scorer interface {
	Name() string
	Score(ctx context.Context, spec *CaseSpec, output *agent.AgentOutput) (models.ScoreDetail, error)
}

// Registry resolves scorers by name. Unknown names resolve to nothing;
// the caller decides whether that is a validation error or a skip.
type Registry struct {
	scorers map[string]Scorer
}

// NewRegistry creates a registry over the given scorers.
func NewRegistry(scorers ...Scorer) *Registry {
	r := &Registry{scorers: make(map[string]Scorer, len(scorers))}
	for _, s := range scorers {
		r.scorers[s.Name()] = s
	}
	return r
}

// NewDefaultRegistry wires the built-in scorer set. judge may be nil, in
// which case the LLM-backed scorers run on their deterministic paths only.
func NewDefaultRegistry(judge Judge) *Registry {
	return NewRegistry(
		NewToolSelectionScorer(),
		NewGroundingScorer(judge),
		NewReasoningScorer(judge),
	)
}

// Get returns the scorer registered under name.
func (r *Registry) Get(name string) (Scorer, bool) {
	s, ok := r.scorers[name]
	return s, ok
}

// Names returns the registered scorer names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scorers))
	for name := range r.scorers {
		names = append(names, name)
	}
	return names
}

// clamp bounds a score to [0, 1] before it leaves a scorer.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
