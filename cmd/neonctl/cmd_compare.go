package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare runs for regressions",
	}
	cmd.AddCommand(newCompareRunsCmd())
	return cmd
}

func newCompareRunsCmd() *cobra.Command {
	var threshold float64
	var failOnRegression bool

	cmd := &cobra.Command{
		Use:   "runs <baseline|latest> <candidate>",
		Short: "Diff candidate scores against a baseline run",
		Long: `Compares two runs case by case. The baseline may be a run id or the
literal "latest", which resolves to the newest completed run of the
candidate's suite created before the candidate.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			baselineID, candidateID := args[0], args[1]
			if baselineID == "latest" {
				baselineID, err = resolveLatestBaseline(cmd.Context(), eng, candidateID)
				if err != nil {
					return err
				}
			}

			report, err := eng.comparator.Compare(cmd.Context(), eng.project.ID, baselineID, candidateID, threshold)
			if err != nil {
				return err
			}

			t := table{headers: []string{"CASE", "SCORER", "BASELINE", "CANDIDATE", "DELTA", "KIND"}}
			for _, d := range report.Regressions {
				t.rows = append(t.rows, deltaRow(d, "regression"))
			}
			for _, d := range report.Improvements {
				t.rows = append(t.rows, deltaRow(d, "improvement"))
			}
			if outputFormat == "table" {
				defer fmt.Printf("overall delta %+.4f, %d regression(s), %d improvement(s), %d unchanged\n",
					report.OverallDelta, len(report.Regressions), len(report.Improvements), report.Unchanged)
			}
			if err := render(t, report); err != nil {
				return err
			}

			if failOnRegression && !report.Passed {
				return fmt.Errorf("%d regression(s) beyond threshold %.2f: %w",
					len(report.Regressions), threshold, errExpectedFailure)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0.05, "Delta magnitude that counts as a change")
	cmd.Flags().BoolVar(&failOnRegression, "fail-on-regression", false, "Exit 1 when any regression is found")
	return cmd
}

// resolveLatestBaseline finds the newest completed run of the
// candidate's suite that predates the candidate.
func resolveLatestBaseline(ctx context.Context, eng *engine, candidateID string) (string, error) {
	candidate, err := eng.runs.GetRun(ctx, eng.project.ID, candidateID)
	if err != nil {
		return "", err
	}
	runs, _, err := eng.runs.ListRuns(ctx, eng.project.ID, models.ListRunsParams{
		SuiteID: candidate.SuiteID,
		Status:  string(run.StatusCompleted),
	})
	if err != nil {
		return "", err
	}
	for _, rn := range runs {
		if rn.ID != candidate.ID && rn.CreatedAt.Before(candidate.CreatedAt) {
			return rn.ID, nil
		}
	}
	return "", fmt.Errorf("no completed baseline run found before %s", candidateID)
}

func deltaRow(d models.ScoreDelta, kind string) []string {
	return []string{
		d.CaseName, d.Scorer,
		fmt.Sprintf("%.4f", d.Baseline),
		fmt.Sprintf("%.4f", d.Candidate),
		fmt.Sprintf("%+.4f", d.Delta),
		kind,
	}
}
