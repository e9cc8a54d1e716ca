package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/neonhq/neon/pkg/models"
)

func newStatsCmd() *cobra.Command {
	var fromRaw, toRaw string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show run aggregates for the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var params models.DashboardParams
			if fromRaw != "" {
				ts, err := time.Parse(time.RFC3339, fromRaw)
				if err != nil {
					return fmt.Errorf("invalid --from %q: want RFC3339", fromRaw)
				}
				params.From = &ts
			}
			if toRaw != "" {
				ts, err := time.Parse(time.RFC3339, toRaw)
				if err != nil {
					return fmt.Errorf("invalid --to %q: want RFC3339", toRaw)
				}
				params.To = &ts
			}

			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			stats, err := eng.stats.Dashboard(cmd.Context(), eng.project.ID, params)
			if err != nil {
				return err
			}

			t := table{
				headers: []string{"TOTAL", "PASSED", "FAILED", "PASS_RATE", "FAIL_RATE", "AVG_SCORE", "THIS_WEEK"},
				rows: [][]string{{
					strconv.Itoa(stats.TotalRuns),
					strconv.Itoa(stats.PassedRuns),
					strconv.Itoa(stats.FailedRuns),
					fmt.Sprintf("%.1f%%", stats.PassRate),
					fmt.Sprintf("%.1f%%", stats.FailRate),
					fmt.Sprintf("%.2f", stats.AvgScore),
					strconv.Itoa(stats.RunsThisWeek),
				}},
			}
			return render(t, stats)
		},
	}
	cmd.Flags().StringVar(&fromRaw, "from", "", "Only runs created at or after this RFC3339 timestamp")
	cmd.Flags().StringVar(&toRaw, "to", "", "Only runs created at or before this RFC3339 timestamp")
	return cmd
}
