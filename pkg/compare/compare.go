// Package compare joins two runs of the same suite and classifies every
// shared (case, scorer) score pair as regression, improvement, or
// unchanged.
package compare

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/services"
)

// Comparator reads two runs from the store and diffs them.
type Comparator struct {
	runs *services.RunService
}

// New creates a comparator over the run service.
func New(runs *services.RunService) *Comparator {
	return &Comparator{runs: runs}
}

// Compare diffs candidate against baseline. Results join on case name,
// the stable key across runs even when the suite was rewritten in
// between; scorers present on only one side are ignored.
func (c *Comparator) Compare(ctx context.Context, projectID, baselineID, candidateID string, threshold float64) (*models.CompareResult, error) {
	if threshold < 0 || threshold > 1 {
		return nil, services.NewValidationError("threshold", "must be in [0, 1]")
	}

	baseline, err := c.runs.GetRun(ctx, projectID, baselineID)
	if err != nil {
		return nil, err
	}
	candidate, err := c.runs.GetRun(ctx, projectID, candidateID)
	if err != nil {
		return nil, err
	}
	// Only terminal, fully-scored runs compare; a partial result set
	// would report phantom regressions.
	if baseline.Status != run.StatusCompleted {
		return nil, services.NewValidationError("baseline", fmt.Sprintf("run is %s, not completed", baseline.Status))
	}
	if candidate.Status != run.StatusCompleted {
		return nil, services.NewValidationError("candidate", fmt.Sprintf("run is %s, not completed", candidate.Status))
	}

	baselineResults, err := c.runs.ListResults(ctx, projectID, baselineID, false)
	if err != nil {
		return nil, err
	}
	candidateResults, err := c.runs.ListResults(ctx, projectID, candidateID, false)
	if err != nil {
		return nil, err
	}

	report := Diff(scoreMap(baselineResults), scoreMap(candidateResults), threshold)
	report.BaselineRunID = baselineID
	report.CandidateRunID = candidateID
	report.OverallDelta = round4(summaryAvg(candidate) - summaryAvg(baseline))
	return report, nil
}

// Diff is the pure comparison over per-case scorer scores. The returned
// report has run ids and overall delta unset.
func Diff(baseline, candidate map[string]map[string]float64, threshold float64) *models.CompareResult {
	report := &models.CompareResult{
		Threshold:    threshold,
		Regressions:  []models.ScoreDelta{},
		Improvements: []models.ScoreDelta{},
	}

	caseNames := make([]string, 0, len(baseline))
	for name := range baseline {
		if _, ok := candidate[name]; ok {
			caseNames = append(caseNames, name)
		}
	}
	sort.Strings(caseNames)

	for _, caseName := range caseNames {
		baseScores := baseline[caseName]
		candScores := candidate[caseName]

		scorers := make([]string, 0, len(baseScores))
		for scorerName := range baseScores {
			if _, ok := candScores[scorerName]; ok {
				scorers = append(scorers, scorerName)
			}
		}
		sort.Strings(scorers)

		for _, scorerName := range scorers {
			delta := round4(candScores[scorerName] - baseScores[scorerName])
			entry := models.ScoreDelta{
				CaseName:  caseName,
				Scorer:    scorerName,
				Baseline:  baseScores[scorerName],
				Candidate: candScores[scorerName],
				Delta:     delta,
			}
			switch {
			case delta < -threshold:
				report.Regressions = append(report.Regressions, entry)
			case delta > threshold:
				report.Improvements = append(report.Improvements, entry)
			default:
				report.Unchanged++
			}
		}
	}

	sort.SliceStable(report.Regressions, func(i, j int) bool {
		return report.Regressions[i].Delta < report.Regressions[j].Delta
	})
	sort.SliceStable(report.Improvements, func(i, j int) bool {
		return report.Improvements[i].Delta > report.Improvements[j].Delta
	})
	report.Passed = len(report.Regressions) == 0
	return report
}

// scoreMap indexes results by case name, then scorer name. Duplicate
// case names cannot occur inside one run; the store enforces one result
// per case.
func scoreMap(results []*ent.Result) map[string]map[string]float64 {
	m := make(map[string]map[string]float64, len(results))
	for _, r := range results {
		scores := make(map[string]float64, len(r.Scores))
		for name, score := range r.Scores {
			scores[name] = score
		}
		m[r.CaseName] = scores
	}
	return m
}

func summaryAvg(r *ent.Run) float64 {
	if r.Summary == nil {
		return 0
	}
	return r.Summary.AvgScore
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
