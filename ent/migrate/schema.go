// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_slug",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[2]},
			},
		},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "case_name", Type: field.TypeString},
		{Name: "trace_run_id", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error", "timeout"}},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "score_details", Type: field.TypeJSON, Nullable: true},
		{Name: "trace_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "execution_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString, Nullable: true},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "results_runs_results",
				Columns:    []*schema.Column{ResultsColumns[13]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "results_test_cases_results",
				Columns:    []*schema.Column{ResultsColumns[14]},
				RefColumns: []*schema.Column{TestCasesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "result_run_id_case_id",
				Unique:  true,
				Columns: []*schema.Column{ResultsColumns[13], ResultsColumns[14]},
			},
			{
				Name:    "result_run_id",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[13]},
			},
			{
				Name:    "result_case_id",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[14]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "agent_version", Type: field.TypeString, Nullable: true},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"cli", "ci", "manual", "api"}, Default: "api"},
		{Name: "trigger_ref", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "suite_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_projects_runs",
				Columns:    []*schema.Column{RunsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "runs_suites_runs",
				Columns:    []*schema.Column{RunsColumns[12]},
				RefColumns: []*schema.Column{SuitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_suite_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[12]},
			},
			{
				Name:    "run_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[11], RunsColumns[4]},
			},
			{
				Name:    "run_agent_version",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[1]},
			},
			{
				Name:    "run_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[11], RunsColumns[10]},
			},
			{
				Name:    "run_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[9]},
			},
		},
	}
	// SuitesColumns holds the columns for the "suites" table.
	SuitesColumns = []*schema.Column{
		{Name: "suite_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "parallel", Type: field.TypeBool, Default: true},
		{Name: "stop_on_failure", Type: field.TypeBool, Default: false},
		{Name: "default_scorers", Type: field.TypeJSON, Nullable: true},
		{Name: "default_min_score", Type: field.TypeFloat64, Default: 0.7},
		{Name: "default_timeout_seconds", Type: field.TypeInt, Default: 300},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SuitesTable holds the schema information for the "suites" table.
	SuitesTable = &schema.Table{
		Name:       "suites",
		Columns:    SuitesColumns,
		PrimaryKey: []*schema.Column{SuitesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "suites_projects_suites",
				Columns:    []*schema.Column{SuitesColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suite_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{SuitesColumns[11], SuitesColumns[1]},
			},
		},
	}
	// TestCasesColumns holds the columns for the "test_cases" table.
	TestCasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "input", Type: field.TypeJSON},
		{Name: "expected_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_tool_sequence", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_output_contains", Type: field.TypeJSON, Nullable: true},
		{Name: "expected_output_pattern", Type: field.TypeString, Nullable: true},
		{Name: "scorers", Type: field.TypeJSON, Nullable: true},
		{Name: "scorer_config", Type: field.TypeJSON, Nullable: true},
		{Name: "min_score", Type: field.TypeFloat64, Default: 0.7},
		{Name: "timeout_seconds", Type: field.TypeInt, Default: 300},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "suite_id", Type: field.TypeString},
	}
	// TestCasesTable holds the schema information for the "test_cases" table.
	TestCasesTable = &schema.Table{
		Name:       "test_cases",
		Columns:    TestCasesColumns,
		PrimaryKey: []*schema.Column{TestCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_cases_suites_cases",
				Columns:    []*schema.Column{TestCasesColumns[15]},
				RefColumns: []*schema.Column{SuitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testcase_suite_id_name",
				Unique:  true,
				Columns: []*schema.Column{TestCasesColumns[15], TestCasesColumns[1]},
			},
			{
				Name:    "testcase_suite_id",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProjectsTable,
		ResultsTable,
		RunsTable,
		SuitesTable,
		TestCasesTable,
	}
)

func init() {
	ResultsTable.ForeignKeys[0].RefTable = RunsTable
	ResultsTable.ForeignKeys[1].RefTable = TestCasesTable
	RunsTable.ForeignKeys[0].RefTable = ProjectsTable
	RunsTable.ForeignKeys[1].RefTable = SuitesTable
	SuitesTable.ForeignKeys[0].RefTable = ProjectsTable
	TestCasesTable.ForeignKeys[0].RefTable = SuitesTable
}
