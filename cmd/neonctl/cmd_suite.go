package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neonhq/neon/pkg/services"
	"github.com/neonhq/neon/pkg/suiteio"
)

func newSuiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Manage test suites",
	}
	cmd.AddCommand(
		newSuiteListCmd(),
		newSuiteShowCmd(),
		newSuiteCreateCmd(),
		newSuiteValidateCmd(),
		newSuiteDeleteCmd(),
	)
	return cmd
}

func newSuiteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			suites, err := eng.suites.ListSuites(cmd.Context(), eng.project.ID)
			if err != nil {
				return err
			}

			t := table{headers: []string{"NAME", "AGENT", "CASES", "ID"}}
			for _, st := range suites {
				count, err := st.QueryCases().Count(cmd.Context())
				if err != nil {
					return err
				}
				t.rows = append(t.rows, []string{st.Name, st.AgentID, strconv.Itoa(count), st.ID})
			}
			return render(t, suites)
		},
	}
}

func newSuiteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a suite and its cases",
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
			cases, err := eng.suites.ListCases(cmd.Context(), eng.project.ID, st.ID)
			if err != nil {
				return err
			}

			t := table{headers: []string{"CASE", "SCORERS", "MIN_SCORE", "TIMEOUT"}}
			for _, tc := range cases {
				t.rows = append(t.rows, []string{
					tc.Name,
					strings.Join(tc.Scorers, ","),
					fmt.Sprintf("%.2f", tc.MinScore),
					fmt.Sprintf("%ds", tc.TimeoutSeconds),
				})
			}
			return render(t, map[string]interface{}{"suite": st, "cases": cases})
		},
	}
}

func newSuiteCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <suite.yaml>",
		Short: "Create a suite from a YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			sf, err := suiteio.LoadFile(args[0], eng.scorers.Names())
			if err != nil {
				return err
			}

			st, err := eng.suites.CreateSuite(cmd.Context(), eng.project.ID, sf.SuiteRequest())
			if err != nil {
				if err == services.ErrAlreadyExists {
					return fmt.Errorf("suite %q already exists", sf.Name)
				}
				return err
			}
			for _, caseReq := range sf.CaseRequests() {
				if _, err := eng.suites.CreateCase(cmd.Context(), eng.project.ID, st.ID, caseReq); err != nil {
					return fmt.Errorf("case %q: %w", caseReq.Name, err)
				}
			}

			t := table{
				headers: []string{"NAME", "CASES", "ID"},
				rows:    [][]string{{st.Name, strconv.Itoa(len(sf.Cases)), st.ID}},
			}
			return render(t, st)
		},
	}
}

func newSuiteValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <suite.yaml>",
		Short: "Validate a YAML definition without creating anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer eng.Close()

			sf, err := suiteio.LoadFile(args[0], eng.scorers.Names())
			if err != nil {
				if verr, ok := err.(*suiteio.ValidationErrors); ok {
					for _, issue := range verr.Issues {
						fmt.Println(issue)
					}
					return fmt.Errorf("%d validation issue(s): %w", len(verr.Issues), errExpectedFailure)
				}
				return err
			}

			fmt.Printf("%s: valid (%d cases)\n", sf.Name, len(sf.Cases))
			return nil
		},
	}
}

func newSuiteDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a suite and everything under it",
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
			if err := eng.suites.DeleteSuite(cmd.Context(), eng.project.ID, st.ID); err != nil {
				return err
			}
			fmt.Printf("deleted suite %q\n", args[0])
			return nil
		},
	}
}
