package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/models"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute and inspect runs",
	}
	cmd.AddCommand(newRunStartCmd(), newRunListCmd(), newRunShowCmd())
	return cmd
}

func newRunStartCmd() *cobra.Command {
	var agentVersion string
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "start <suite-name>",
		Short: "Execute a suite and wait for the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			st, err := eng.suites.GetSuiteByName(cmd.Context(), eng.project.ID, args[0])
			if err != nil {
				return err
			}

			created, err := eng.orch.CreateRun(cmd.Context(), eng.project.ID, models.CreateRunRequest{
				SuiteID:      st.ID,
				AgentVersion: agentVersion,
				Trigger:      "cli",
			})
			if err != nil {
				return err
			}
			if err := eng.orch.Execute(cmd.Context(), eng.project.ID, created.ID); err != nil {
				return err
			}

			finished, err := eng.runs.GetRun(cmd.Context(), eng.project.ID, created.ID)
			if err != nil {
				return err
			}
			if err := renderRun(finished); err != nil {
				return err
			}

			if failOnError && runFailed(finished) {
				return fmt.Errorf("run %s did not pass: %w", finished.ID, errExpectedFailure)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&agentVersion, "agent-version", "", "Agent version label recorded on the run")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit 1 when any case fails or errors")
	return cmd
}

func newRunListCmd() *cobra.Command {
	var suiteName string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			params := models.ListRunsParams{Limit: limit}
			if suiteName != "" {
				st, err := eng.suites.GetSuiteByName(cmd.Context(), eng.project.ID, suiteName)
				if err != nil {
					return err
				}
				params.SuiteID = st.ID
			}

			runs, total, err := eng.runs.ListRuns(cmd.Context(), eng.project.ID, params)
			if err != nil {
				return err
			}

			t := table{headers: []string{"ID", "STATUS", "VERSION", "PASSED", "AVG", "CREATED"}}
			for _, rn := range runs {
				version := ""
				if rn.AgentVersion != nil {
					version = *rn.AgentVersion
				}
				passed, avg := "-", "-"
				if rn.Summary != nil {
					passed = fmt.Sprintf("%d/%d", rn.Summary.Passed, rn.Summary.TotalCases)
					avg = fmt.Sprintf("%.4f", rn.Summary.AvgScore)
				}
				t.rows = append(t.rows, []string{
					rn.ID, string(rn.Status), version, passed, avg,
					rn.CreatedAt.Format(time.RFC3339),
				})
			}
			if outputFormat == "table" {
				defer fmt.Printf("%d of %d run(s)\n", len(runs), total)
			}
			return render(t, models.ListRunsResponse{Runs: runs, TotalCount: total, Limit: limit})
		},
	}
	cmd.Flags().StringVar(&suiteName, "suite", "", "Only runs of this suite")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}

func newRunShowCmd() *cobra.Command {
	var failedOnly bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run and its per-case results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			rn, err := eng.runs.GetRun(cmd.Context(), eng.project.ID, args[0])
			if err != nil {
				return err
			}
			results, err := eng.runs.ListResults(cmd.Context(), eng.project.ID, rn.ID, failedOnly)
			if err != nil {
				return err
			}

			t := table{headers: []string{"CASE", "STATUS", "PASSED", "AVG", "TIME_MS", "ERROR"}}
			for _, res := range results {
				avg := 0.0
				if len(res.Scores) > 0 {
					for _, score := range res.Scores {
						avg += score
					}
					avg /= float64(len(res.Scores))
				}
				errMsg := ""
				if res.Error != nil {
					errMsg = *res.Error
				}
				t.rows = append(t.rows, []string{
					res.CaseName, string(res.Status),
					strconv.FormatBool(res.Passed),
					fmt.Sprintf("%.4f", avg),
					strconv.FormatInt(res.ExecutionTimeMs, 10),
					errMsg,
				})
			}
			if outputFormat == "table" {
				printRunHeader(rn)
			}
			return render(t, map[string]interface{}{"run": rn, "results": results})
		},
	}
	cmd.Flags().BoolVar(&failedOnly, "failed-only", false, "Only non-passing results")
	return cmd
}

func renderRun(rn *ent.Run) error {
	t := table{headers: []string{"ID", "STATUS", "PASSED", "FAILED", "ERRORED", "AVG"}}
	row := []string{rn.ID, string(rn.Status), "-", "-", "-", "-"}
	if rn.Summary != nil {
		row[2] = strconv.Itoa(rn.Summary.Passed)
		row[3] = strconv.Itoa(rn.Summary.Failed)
		row[4] = strconv.Itoa(rn.Summary.Errored)
		row[5] = fmt.Sprintf("%.4f", rn.Summary.AvgScore)
	}
	t.rows = append(t.rows, row)
	return render(t, rn)
}

func printRunHeader(rn *ent.Run) {
	version := "-"
	if rn.AgentVersion != nil {
		version = *rn.AgentVersion
	}
	fmt.Printf("run %s  status=%s  version=%s\n", rn.ID, rn.Status, version)
}

func runFailed(rn *ent.Run) bool {
	if rn.Status != run.StatusCompleted {
		return true
	}
	return rn.Summary == nil || rn.Summary.Failed > 0 || rn.Summary.Errored > 0
}
