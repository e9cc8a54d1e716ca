// Package runner executes a single test case end to end: invoke the
// agent inside a traced scope, apply the case's scorers, decide
// pass/fail, and persist exactly one result row.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/metrics"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/trace"
)

// Runner is stateless across cases; one instance serves a whole run.
type Runner struct {
	client      *ent.Client
	scorers     *scorer.Registry
	traceClient *trace.Client
	logger      *slog.Logger
}

// NewRunner creates a runner over the given store, scorer registry, and
// trace client.
func NewRunner(client *ent.Client, scorers *scorer.Registry, traceClient *trace.Client, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		client:      client,
		scorers:     scorers,
		traceClient: traceClient,
		logger:      logger,
	}
}

// RunCase executes one case and persists its result. Agent and scorer
// failures never propagate; they are folded into the persisted row. The
// returned error is a store failure only, which is fatal to the run.
func (r *Runner) RunCase(ctx context.Context, run *ent.Run, suite *ent.Suite, tc *ent.TestCase, ag agent.Agent) (*ent.Result, error) {
	query := tc.Input.Query
	contextMap := tc.Input.Context
	if contextMap == nil {
		contextMap = map[string]interface{}{}
	}

	timeout := time.Duration(tc.TimeoutSeconds) * time.Second
	tags := map[string]string{
		"neon.run.id":     run.ID,
		"neon.suite.name": suite.Name,
		"neon.case.id":    tc.ID,
		"neon.case.name":  tc.Name,
	}
	if run.AgentVersion != nil {
		tags["neon.agent.version"] = *run.AgentVersion
	}

	execution := r.traceClient.ExecuteTraced(ctx, ag, query, contextMap, tc.Name, tags, timeout)

	status := result.StatusSuccess
	var errMsg string
	if execution.Status != "success" {
		if errors.Is(execution.Err, context.DeadlineExceeded) {
			status = result.StatusTimeout
			errMsg = fmt.Sprintf("case exceeded timeout of %ds", tc.TimeoutSeconds)
		} else {
			status = result.StatusError
			errMsg = execution.Err.Error()
		}
	}

	scores := map[string]float64{}
	scoreDetails := map[string]models.ScoreDetail{}
	if status == result.StatusSuccess {
		scores, scoreDetails = r.applyScorers(ctx, tc, suite, execution.Output)
	}

	avg := 0.0
	if len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		avg = sum / float64(len(scores))
	}
	// A case with no applied scores cannot pass, whatever its threshold.
	passed := status == result.StatusSuccess && len(scores) > 0 && avg >= tc.MinScore

	create := r.client.Result.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetCaseID(tc.ID).
		SetCaseName(tc.Name).
		SetStatus(status).
		SetScores(scores).
		SetScoreDetails(scoreDetails).
		SetPassed(passed).
		SetExecutionTimeMs(execution.ExecutionTimeMs)
	if execution.TraceRunID != "" {
		create.SetTraceRunID(execution.TraceRunID)
	}
	if execution.TraceID != "" {
		create.SetTraceID(execution.TraceID)
	}
	if execution.Output != nil {
		create.SetOutput(map[string]interface{}{
			"output":       execution.Output.Output,
			"tools_called": execution.Output.ToolsCalled,
			"metadata":     execution.Output.Metadata,
		})
	}
	if execution.TraceSummary != nil {
		create.SetTraceSummary(execution.TraceSummary)
	}
	if errMsg != "" {
		create.SetError(errMsg)
	}

	// Persist on a detached context so a run cancellation arriving mid-case
	// cannot lose an already-produced result.
	persisted, err := create.Save(context.WithoutCancel(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to persist result for case %s: %w", tc.Name, err)
	}

	metrics.CasesExecuted.WithLabelValues(string(status)).Inc()
	metrics.CaseDuration.Observe(float64(execution.ExecutionTimeMs) / 1000)

	r.logger.Info("case finished",
		slog.String("run_id", run.ID),
		slog.String("case", tc.Name),
		slog.String("status", string(status)),
		slog.Bool("passed", passed),
		slog.Float64("avg_score", avg))
	return persisted, nil
}

// applyScorers runs every scorer the case names. Unknown names are
// skipped with a warning; a scorer failure omits its score and records
// the failure under its name.
func (r *Runner) applyScorers(ctx context.Context, tc *ent.TestCase, suite *ent.Suite, output *agent.AgentOutput) (map[string]float64, map[string]models.ScoreDetail) {
	scores := map[string]float64{}
	details := map[string]models.ScoreDetail{}

	names := tc.Scorers
	if names == nil {
		names = suite.DefaultScorers
	}

	spec := &scorer.CaseSpec{
		Name:                   tc.Name,
		Query:                  tc.Input.Query,
		ExpectedTools:          tc.ExpectedTools,
		ExpectedToolSequence:   tc.ExpectedToolSequence,
		ExpectedOutputContains: tc.ExpectedOutputContains,
		ExpectedOutputPattern:  tc.ExpectedOutputPattern,
		ScorerConfig:           tc.ScorerConfig,
		MinScore:               tc.MinScore,
	}

	for _, name := range names {
		s, ok := r.scorers.Get(name)
		if !ok {
			r.logger.Warn("unknown scorer, skipping",
				slog.String("case", tc.Name),
				slog.String("scorer", name))
			continue
		}
		detail, err := s.Score(ctx, spec, output)
		if err != nil {
			r.logger.Error("scorer failed",
				slog.String("case", tc.Name),
				slog.String("scorer", name),
				slog.Any("error", err))
			metrics.ScorerFailures.WithLabelValues(name).Inc()
			details[name] = models.ScoreDetail{
				Score:    0,
				Reason:   "scorer failed",
				Evidence: []string{err.Error()},
			}
			continue
		}
		scores[name] = detail.Score
		details[name] = detail
	}
	return scores, details
}
