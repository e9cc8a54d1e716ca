package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/pkg/models"
)

const (
	// DefaultListLimit caps run listings when no limit is given.
	DefaultListLimit = 50
	// MaxListLimit is the hard ceiling for a single page.
	MaxListLimit = 500
)

// RunService manages run records and their state machine:
//
//	pending -> running -> completed | failed | cancelled
//	pending -> cancelled
//
// Terminal transitions are compare-and-swap updates so a concurrent
// cancellation always wins over a late engine write.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun creates a pending run for a suite. The suite must belong to
// the project and have at least one test case.
func (s *RunService) CreateRun(ctx context.Context, projectID string, req models.CreateRunRequest) (*ent.Run, error) {
	st, err := s.client.Suite.Query().
		Where(suite.IDEQ(req.SuiteID), suite.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load suite for run: %w", err)
	}

	caseCount, err := st.QueryCases().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}
	if caseCount == 0 {
		return nil, NewValidationError("suite_id", "suite has no test cases")
	}

	trigger := run.TriggerAPI
	switch req.Trigger {
	case "":
	case "cli":
		trigger = run.TriggerCli
	case "ci":
		trigger = run.TriggerCi
	case "manual":
		trigger = run.TriggerManual
	case "api":
		trigger = run.TriggerAPI
	default:
		return nil, NewValidationError("trigger", "must be one of cli, ci, manual, api")
	}
	if req.Config != nil && req.Config.MaxParallelCases != nil && *req.Config.MaxParallelCases <= 0 {
		return nil, NewValidationError("config.max_parallel_cases", "must be positive")
	}

	create := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetSuiteID(req.SuiteID).
		SetTrigger(trigger).
		SetStatus(run.StatusPending)
	if req.AgentVersion != "" {
		create.SetAgentVersion(req.AgentVersion)
	}
	if req.TriggerRef != "" {
		create.SetTriggerRef(req.TriggerRef)
	}
	if req.Config != nil {
		create.SetConfig(req.Config)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return created, nil
}

// GetRun retrieves a run by id within the project scope.
func (s *RunService) GetRun(ctx context.Context, projectID, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID), run.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns lists the project's runs newest first, with the unpaginated
// total for the same filter.
func (s *RunService) ListRuns(ctx context.Context, projectID string, params models.ListRunsParams) ([]*ent.Run, int, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := s.client.Run.Query().Where(run.ProjectIDEQ(projectID))
	if params.SuiteID != "" {
		query = query.Where(run.SuiteIDEQ(params.SuiteID))
	}
	if params.Status != "" {
		status := run.Status(params.Status)
		if err := run.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", "unknown status filter")
		}
		query = query.Where(run.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	runs, err := query.
		Order(ent.Desc(run.FieldCreatedAt), ent.Desc(run.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, total, nil
}

// ClaimRun transitions pending -> running and stamps started_at plus an
// initial heartbeat. Returns false when the run was already claimed,
// cancelled, or finished.
func (s *RunService) ClaimRun(ctx context.Context, runID string) (bool, error) {
	now := time.Now()
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusRunning).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim run: %w", err)
	}
	return n > 0, nil
}

// Heartbeat refreshes last_heartbeat_at while a run executes. A miss is
// not an error: the run may have been cancelled underneath us.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// CompleteRun writes the terminal status and summary, guarded on the run
// still being in the running state so it never overwrites a cancellation.
// Returns false when the guard did not match.
func (s *RunService) CompleteRun(ctx context.Context, runID string, status run.Status, summary *models.RunSummary) (bool, error) {
	if status != run.StatusCompleted && status != run.StatusFailed && status != run.StatusCancelled {
		return false, NewValidationError("status", "not a terminal status")
	}
	update := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if summary != nil {
		update.SetSummary(summary)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete run: %w", err)
	}
	return n > 0, nil
}

// CancelRun transitions a pending or running run to cancelled. Pending
// runs are finalized here; running runs are finalized by the engine once
// in-flight cases wind down. Cancelling a terminal run is an error.
func (s *RunService) CancelRun(ctx context.Context, projectID, runID string) (*ent.Run, error) {
	if _, err := s.GetRun(ctx, projectID, runID); err != nil {
		return nil, err
	}

	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(run.StatusPending, run.StatusRunning)).
		SetStatus(run.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		return nil, ErrNotCancellable
	}
	return s.GetRun(ctx, projectID, runID)
}

// SetRunSummary writes a summary without touching status. Used when a
// cancelled run's partial results are aggregated after the fact.
func (s *RunService) SetRunSummary(ctx context.Context, runID string, summary *models.RunSummary) error {
	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID)).
		SetSummary(summary).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set run summary: %w", err)
	}
	return nil
}

// ListResults returns a run's results in case creation order. With
// failedOnly, error and timeout results and below-threshold successes
// are returned.
func (s *RunService) ListResults(ctx context.Context, projectID, runID string, failedOnly bool) ([]*ent.Result, error) {
	if _, err := s.GetRun(ctx, projectID, runID); err != nil {
		return nil, err
	}
	query := s.client.Result.Query().
		Where(result.RunIDEQ(runID))
	if failedOnly {
		query = query.Where(result.PassedEQ(false))
	}
	results, err := query.
		Order(ent.Asc(result.FieldCreatedAt), ent.Asc(result.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// FindStaleRuns returns running runs whose heartbeat is older than cutoff.
// Runs claimed before heartbeats existed (NULL column) are included.
func (s *RunService) FindStaleRuns(ctx context.Context, cutoff time.Time) ([]*ent.Run, error) {
	stale, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.Or(
				run.LastHeartbeatAtLT(cutoff),
				run.LastHeartbeatAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale runs: %w", err)
	}
	return stale, nil
}

// FailStaleRun marks an orphaned run failed, guarded on it still being
// in the running state.
func (s *RunService) FailStaleRun(ctx context.Context, runID string) (bool, error) {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetStatus(run.StatusFailed).
		SetCompletedAt(time.Now()).
		SetSummary(&models.RunSummary{Error: "orphaned: no heartbeat from executing process"}).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fail stale run: %w", err)
	}
	return n > 0, nil
}
