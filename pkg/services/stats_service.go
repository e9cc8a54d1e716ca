package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"entgo.io/ent/dialect"

	"github.com/neonhq/neon/pkg/database"
	"github.com/neonhq/neon/pkg/models"
)

// StatsService computes the project dashboard with a single SQL
// round-trip. The summary document is projected at the SQL level, so
// the query text depends on the dialect's JSON operators.
type StatsService struct {
	client *database.Client
}

// NewStatsService creates a new StatsService.
func NewStatsService(client *database.Client) *StatsService {
	return &StatsService{client: client}
}

const dashboardQueryPostgres = `
SELECT
    COUNT(*) AS total_runs,
    COUNT(*) FILTER (
        WHERE status = 'completed'
          AND COALESCE((summary->>'failed')::bigint, -1) = 0
          AND COALESCE((summary->>'errored')::bigint, -1) = 0
    ) AS passed_runs,
    COUNT(*) FILTER (
        WHERE status = 'failed'
           OR (status = 'completed'
               AND (COALESCE((summary->>'failed')::bigint, 0) > 0
                    OR COALESCE((summary->>'errored')::bigint, 0) > 0))
    ) AS failed_runs,
    COALESCE(AVG((summary->>'avg_score')::double precision)
        FILTER (WHERE status = 'completed' AND summary IS NOT NULL), 0) AS avg_score,
    (SELECT COUNT(*) FROM runs w
      WHERE w.project_id = $1 AND w.created_at >= $2) AS runs_this_week
FROM runs
WHERE project_id = $1
  AND ($3::timestamptz IS NULL OR created_at >= $3)
  AND ($4::timestamptz IS NULL OR created_at <= $4)
`

const dashboardQuerySQLite = `
SELECT
    COUNT(*) AS total_runs,
    COALESCE(SUM(CASE
        WHEN status = 'completed'
         AND COALESCE(json_extract(summary, '$.failed'), -1) = 0
         AND COALESCE(json_extract(summary, '$.errored'), -1) = 0
        THEN 1 ELSE 0 END), 0) AS passed_runs,
    COALESCE(SUM(CASE
        WHEN status = 'failed'
          OR (status = 'completed'
              AND (COALESCE(json_extract(summary, '$.failed'), 0) > 0
                   OR COALESCE(json_extract(summary, '$.errored'), 0) > 0))
        THEN 1 ELSE 0 END), 0) AS failed_runs,
    COALESCE(AVG(CASE
        WHEN status = 'completed' AND summary IS NOT NULL
        THEN json_extract(summary, '$.avg_score') END), 0) AS avg_score,
    (SELECT COUNT(*) FROM runs w
      WHERE w.project_id = ?1 AND w.created_at >= ?2) AS runs_this_week
FROM runs
WHERE project_id = ?1
  AND (?3 IS NULL OR created_at >= ?3)
  AND (?4 IS NULL OR created_at <= ?4)
`

// Dashboard aggregates run outcomes for a project. The from/to window
// bounds every metric except runs_this_week, which always covers the
// trailing 7 days.
func (s *StatsService) Dashboard(ctx context.Context, projectID string, params models.DashboardParams) (*models.DashboardStats, error) {
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return nil, NewValidationError("to", "must not precede from")
	}

	query := dashboardQueryPostgres
	if s.client.Dialect() == dialect.SQLite {
		query = dashboardQuerySQLite
	}

	weekStart := time.Now().Add(-7 * 24 * time.Hour)
	var from, to interface{}
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}

	row := s.client.DB().QueryRowContext(ctx, query, projectID, weekStart, from, to)

	var stats models.DashboardStats
	var avgScore float64
	if err := row.Scan(&stats.TotalRuns, &stats.PassedRuns, &stats.FailedRuns, &avgScore, &stats.RunsThisWeek); err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard: %w", err)
	}

	if stats.TotalRuns > 0 {
		stats.PassRate = round1(float64(stats.PassedRuns) / float64(stats.TotalRuns) * 100)
		stats.FailRate = round1(float64(stats.FailedRuns) / float64(stats.TotalRuns) * 100)
	}
	stats.AvgScore = round2(avgScore)
	return &stats, nil
}

// CountRunsSince counts the project's runs created at or after since.
func (s *StatsService) CountRunsSince(ctx context.Context, projectID string, since time.Time) (int, error) {
	var query string
	if s.client.Dialect() == dialect.SQLite {
		query = `SELECT COUNT(*) FROM runs WHERE project_id = ?1 AND created_at >= ?2`
	} else {
		query = `SELECT COUNT(*) FROM runs WHERE project_id = $1 AND created_at >= $2`
	}
	var n int
	if err := s.client.DB().QueryRowContext(ctx, query, projectID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
