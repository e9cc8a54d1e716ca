package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
	"github.com/neonhq/neon/pkg/models"
)

// SuiteService manages suites and their test cases. All operations are
// scoped to a project; a suite id that belongs to a different project is
// treated as not found.
type SuiteService struct {
	client *ent.Client
}

// NewSuiteService creates a new SuiteService.
func NewSuiteService(client *ent.Client) *SuiteService {
	return &SuiteService{client: client}
}

// CreateSuite creates a suite under the given project.
func (s *SuiteService) CreateSuite(ctx context.Context, projectID string, req models.CreateSuiteRequest) (*ent.Suite, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.DefaultMinScore != nil && (*req.DefaultMinScore < 0 || *req.DefaultMinScore > 1) {
		return nil, NewValidationError("default_min_score", "must be in [0, 1]")
	}
	if req.DefaultTimeoutSeconds != nil && *req.DefaultTimeoutSeconds <= 0 {
		return nil, NewValidationError("default_timeout_seconds", "must be positive")
	}

	create := s.client.Suite.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName(req.Name).
		SetAgentID(req.AgentID).
		SetDescription(req.Description)
	if req.Parallel != nil {
		create.SetParallel(*req.Parallel)
	}
	if req.StopOnFailure != nil {
		create.SetStopOnFailure(*req.StopOnFailure)
	}
	if req.DefaultScorers != nil {
		create.SetDefaultScorers(req.DefaultScorers)
	}
	if req.DefaultMinScore != nil {
		create.SetDefaultMinScore(*req.DefaultMinScore)
	}
	if req.DefaultTimeoutSeconds != nil {
		create.SetDefaultTimeoutSeconds(*req.DefaultTimeoutSeconds)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create suite: %w", err)
	}
	return created, nil
}

// GetSuite retrieves a suite by id within the project scope.
func (s *SuiteService) GetSuite(ctx context.Context, projectID, suiteID string) (*ent.Suite, error) {
	st, err := s.client.Suite.Query().
		Where(suite.IDEQ(suiteID), suite.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get suite: %w", err)
	}
	return st, nil
}

// GetSuiteByName retrieves a suite by its project-unique name.
func (s *SuiteService) GetSuiteByName(ctx context.Context, projectID, name string) (*ent.Suite, error) {
	st, err := s.client.Suite.Query().
		Where(suite.NameEQ(name), suite.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get suite by name: %w", err)
	}
	return st, nil
}

// ListSuites lists the project's suites ordered by name.
func (s *SuiteService) ListSuites(ctx context.Context, projectID string) ([]*ent.Suite, error) {
	suites, err := s.client.Suite.Query().
		Where(suite.ProjectIDEQ(projectID)).
		Order(ent.Asc(suite.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suites: %w", err)
	}
	return suites, nil
}

// UpdateSuite applies the non-nil fields of req to the suite.
func (s *SuiteService) UpdateSuite(ctx context.Context, projectID, suiteID string, req models.UpdateSuiteRequest) (*ent.Suite, error) {
	existing, err := s.GetSuite(ctx, projectID, suiteID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.AgentID != nil && *req.AgentID == "" {
		return nil, NewValidationError("agent_id", "must not be empty")
	}
	if req.DefaultMinScore != nil && (*req.DefaultMinScore < 0 || *req.DefaultMinScore > 1) {
		return nil, NewValidationError("default_min_score", "must be in [0, 1]")
	}

	update := existing.Update()
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.AgentID != nil {
		update.SetAgentID(*req.AgentID)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Parallel != nil {
		update.SetParallel(*req.Parallel)
	}
	if req.StopOnFailure != nil {
		update.SetStopOnFailure(*req.StopOnFailure)
	}
	if req.DefaultScorers != nil {
		update.SetDefaultScorers(req.DefaultScorers)
	}
	if req.DefaultMinScore != nil {
		update.SetDefaultMinScore(*req.DefaultMinScore)
	}
	if req.DefaultTimeoutSeconds != nil {
		update.SetDefaultTimeoutSeconds(*req.DefaultTimeoutSeconds)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update suite: %w", err)
	}
	return updated, nil
}

// DeleteSuite removes a suite; cases, runs, and results cascade.
func (s *SuiteService) DeleteSuite(ctx context.Context, projectID, suiteID string) error {
	existing, err := s.GetSuite(ctx, projectID, suiteID)
	if err != nil {
		return err
	}
	if err := s.client.Suite.DeleteOne(existing).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete suite: %w", err)
	}
	return nil
}

// CreateCase creates a test case under the given suite.
func (s *SuiteService) CreateCase(ctx context.Context, projectID, suiteID string, req models.CreateCaseRequest) (*ent.TestCase, error) {
	if _, err := s.GetSuite(ctx, projectID, suiteID); err != nil {
		return nil, err
	}
	if err := validateCaseFields(req.Name, req.Input.Query, req.ExpectedOutputPattern, req.MinScore, req.TimeoutSeconds); err != nil {
		return nil, err
	}

	create := s.client.TestCase.Create().
		SetID(uuid.New().String()).
		SetSuiteID(suiteID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetInput(req.Input).
		SetExpectedOutputPattern(req.ExpectedOutputPattern)
	if req.ExpectedTools != nil {
		create.SetExpectedTools(*req.ExpectedTools)
	}
	if req.ExpectedToolSequence != nil {
		create.SetExpectedToolSequence(*req.ExpectedToolSequence)
	}
	if req.ExpectedOutputContains != nil {
		create.SetExpectedOutputContains(*req.ExpectedOutputContains)
	}
	if req.Scorers != nil {
		create.SetScorers(req.Scorers)
	}
	if req.ScorerConfig != nil {
		create.SetScorerConfig(req.ScorerConfig)
	}
	if req.MinScore != nil {
		create.SetMinScore(*req.MinScore)
	}
	if req.TimeoutSeconds != nil {
		create.SetTimeoutSeconds(*req.TimeoutSeconds)
	}
	if req.Tags != nil {
		create.SetTags(req.Tags)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return created, nil
}

// GetCase retrieves a case by id within the project scope.
func (s *SuiteService) GetCase(ctx context.Context, projectID, caseID string) (*ent.TestCase, error) {
	tc, err := s.client.TestCase.Query().
		Where(testcase.IDEQ(caseID), testcase.HasSuiteWith(suite.ProjectIDEQ(projectID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return tc, nil
}

// ListCases lists a suite's cases in creation order, which is also the
// sequential execution order.
func (s *SuiteService) ListCases(ctx context.Context, projectID, suiteID string) ([]*ent.TestCase, error) {
	if _, err := s.GetSuite(ctx, projectID, suiteID); err != nil {
		return nil, err
	}
	cases, err := s.client.TestCase.Query().
		Where(testcase.SuiteIDEQ(suiteID)).
		Order(ent.Asc(testcase.FieldCreatedAt), ent.Asc(testcase.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// UpdateCase applies the non-nil fields of req to the case. Cases are
// frozen while a run of their suite is pending or running.
func (s *SuiteService) UpdateCase(ctx context.Context, projectID, caseID string, req models.UpdateCaseRequest) (*ent.TestCase, error) {
	existing, err := s.GetCase(ctx, projectID, caseID)
	if err != nil {
		return nil, err
	}
	if err := s.requireNoActiveRun(ctx, existing.SuiteID); err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.ExpectedOutputPattern != nil {
		if _, err := regexp.Compile(*req.ExpectedOutputPattern); err != nil {
			return nil, NewValidationError("expected_output_pattern", "not a valid regular expression")
		}
	}
	if req.MinScore != nil && (*req.MinScore < 0 || *req.MinScore > 1) {
		return nil, NewValidationError("min_score", "must be in [0, 1]")
	}
	if req.TimeoutSeconds != nil && *req.TimeoutSeconds <= 0 {
		return nil, NewValidationError("timeout_seconds", "must be positive")
	}

	update := existing.Update()
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Input != nil {
		update.SetInput(*req.Input)
	}
	if req.ExpectedTools != nil {
		update.SetExpectedTools(*req.ExpectedTools)
	}
	if req.ExpectedToolSequence != nil {
		update.SetExpectedToolSequence(*req.ExpectedToolSequence)
	}
	if req.ExpectedOutputContains != nil {
		update.SetExpectedOutputContains(*req.ExpectedOutputContains)
	}
	if req.ExpectedOutputPattern != nil {
		update.SetExpectedOutputPattern(*req.ExpectedOutputPattern)
	}
	if req.Scorers != nil {
		update.SetScorers(req.Scorers)
	}
	if req.ScorerConfig != nil {
		update.SetScorerConfig(req.ScorerConfig)
	}
	if req.MinScore != nil {
		update.SetMinScore(*req.MinScore)
	}
	if req.TimeoutSeconds != nil {
		update.SetTimeoutSeconds(*req.TimeoutSeconds)
	}
	if req.Tags != nil {
		update.SetTags(req.Tags)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return updated, nil
}

// DeleteCase removes a test case. Results of past runs survive with
// their case reference cleared; the denormalized case_name keeps them
// comparable. Rejected while a run of the suite is pending or running.
func (s *SuiteService) DeleteCase(ctx context.Context, projectID, caseID string) error {
	existing, err := s.GetCase(ctx, projectID, caseID)
	if err != nil {
		return err
	}
	if err := s.requireNoActiveRun(ctx, existing.SuiteID); err != nil {
		return err
	}
	if err := s.client.TestCase.DeleteOne(existing).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// requireNoActiveRun returns ErrSuiteBusy when the suite has a run in a
// non-terminal state.
func (s *SuiteService) requireNoActiveRun(ctx context.Context, suiteID string) error {
	busy, err := s.client.Run.Query().
		Where(run.SuiteIDEQ(suiteID), run.StatusIn(run.StatusPending, run.StatusRunning)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for active runs: %w", err)
	}
	if busy {
		return ErrSuiteBusy
	}
	return nil
}

func validateCaseFields(name, query, pattern string, minScore *float64, timeoutSeconds *int) error {
	if name == "" {
		return NewValidationError("name", "required")
	}
	if query == "" {
		return NewValidationError("input.query", "required")
	}
	if pattern != "" {
		if _, err := regexp.Compile(pattern); err != nil {
			return NewValidationError("expected_output_pattern", "not a valid regular expression")
		}
	}
	if minScore != nil && (*minScore < 0 || *minScore > 1) {
		return NewValidationError("min_score", "must be in [0, 1]")
	}
	if timeoutSeconds != nil && *timeoutSeconds <= 0 {
		return NewValidationError("timeout_seconds", "must be positive")
	}
	return nil
}
