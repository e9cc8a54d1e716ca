package orchestrator

import (
	"math"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/pkg/models"
)

// aggregateSummary recomputes a run summary from its persisted results.
func aggregateSummary(results []*ent.Result) *models.RunSummary {
	summary := &models.RunSummary{
		TotalCases:   len(results),
		ScoresByType: map[string]float64{},
	}

	var allScores []float64
	perScorer := map[string][]float64{}
	for _, r := range results {
		switch {
		case r.Status == result.StatusError || r.Status == result.StatusTimeout:
			summary.Errored++
		case r.Passed:
			summary.Passed++
		default:
			summary.Failed++
		}
		summary.ExecutionTimeMs += r.ExecutionTimeMs
		for name, score := range r.Scores {
			allScores = append(allScores, score)
			perScorer[name] = append(perScorer[name], score)
		}
	}

	if len(allScores) > 0 {
		summary.AvgScore = round4(mean(allScores))
	}
	for name, scores := range perScorer {
		summary.ScoresByType[name] = round4(mean(scores))
	}
	return summary
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
