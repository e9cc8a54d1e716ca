// Package orchestrator owns the run lifecycle: claim a pending run,
// schedule its cases over a bounded worker pool, aggregate the summary,
// and publish the terminal state.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/metrics"
	"github.com/neonhq/neon/pkg/models"
	"github.com/neonhq/neon/pkg/runner"
	"github.com/neonhq/neon/pkg/scorer"
	"github.com/neonhq/neon/pkg/services"
	"github.com/neonhq/neon/pkg/trace"
)

const (
	// DefaultMaxParallelCases bounds in-flight case executions per run.
	DefaultMaxParallelCases = 10
	// defaultHeartbeatInterval paces liveness writes and cancel polling.
	defaultHeartbeatInterval = 10 * time.Second
)

// Config tunes an Orchestrator.
type Config struct {
	MaxParallelCases  int
	HeartbeatInterval time.Duration
	// LocalSuiteScope names traced scopes after the suite instead of the
	// project. The CLI's embedded engine sets this.
	LocalSuiteScope bool
}

// Orchestrator drives runs to a terminal state. One instance serves all
// runs of a process; per-run state lives in the cancels table.
type Orchestrator struct {
	client  *ent.Client
	runs    *services.RunService
	suites  *services.SuiteService
	loader  *agent.Loader
	scorers *scorer.Registry
	logger  *slog.Logger
	cfg     Config

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// New creates an orchestrator. loader may be nil to use the process-wide
// agent registry.
func New(client *ent.Client, runs *services.RunService, suites *services.SuiteService, loader *agent.Loader, scorers *scorer.Registry, logger *slog.Logger, cfg Config) *Orchestrator {
	if loader == nil {
		loader = agent.NewLoader(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxParallelCases <= 0 {
		cfg.MaxParallelCases = DefaultMaxParallelCases
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = defaultHeartbeatInterval
	}
	return &Orchestrator{
		client:  client,
		runs:    runs,
		suites:  suites,
		loader:  loader,
		scorers: scorers,
		logger:  logger,
		cfg:     cfg,
		cancels: make(map[string]context.CancelFunc),
	}
}

// CreateRun validates and persists a pending run.
func (o *Orchestrator) CreateRun(ctx context.Context, projectID string, req models.CreateRunRequest) (*ent.Run, error) {
	return o.runs.CreateRun(ctx, projectID, req)
}

// Start executes a run asynchronously. The spawned execution detaches
// from the caller's context; Shutdown waits for it.
func (o *Orchestrator) Start(ctx context.Context, projectID, runID string) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		if err := o.Execute(context.WithoutCancel(ctx), projectID, runID); err != nil {
			o.logger.Error("run execution failed",
				slog.String("run_id", runID),
				slog.Any("error", err))
		}
	}()
}

// CancelRun flips a pending or running run to cancelled and interrupts
// the local execution if this process owns it.
func (o *Orchestrator) CancelRun(ctx context.Context, projectID, runID string) (*ent.Run, error) {
	cancelled, err := o.runs.CancelRun(ctx, projectID, runID)
	if err != nil {
		return nil, err
	}
	o.mu.Lock()
	cancel := o.cancels[runID]
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return cancelled, nil
}

// Shutdown waits for in-flight executions to finish.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute drives one run to a terminal state. Returns an error only for
// orchestration-level failures that also mark the run failed.
func (o *Orchestrator) Execute(ctx context.Context, projectID, runID string) error {
	rn, err := o.runs.GetRun(ctx, projectID, runID)
	if err != nil {
		return err
	}
	st, err := o.suites.GetSuite(ctx, projectID, rn.SuiteID)
	if err != nil {
		return err
	}
	cases, err := o.suites.ListCases(ctx, projectID, st.ID)
	if err != nil {
		return err
	}

	claimed, err := o.runs.ClaimRun(ctx, runID)
	if err != nil {
		return err
	}
	if !claimed {
		o.logger.Info("run not claimable, skipping", slog.String("run_id", runID))
		return nil
	}
	metrics.RunsStarted.Inc()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	o.mu.Lock()
	o.cancels[runID] = cancel
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		delete(o.cancels, runID)
		o.mu.Unlock()
	}()

	stopHeartbeat := o.startHeartbeat(runCtx, projectID, runID, cancel)
	defer stopHeartbeat()

	ag, err := o.loader.Load(st.AgentID)
	if err != nil {
		o.failRun(ctx, runID, fmt.Sprintf("agent load failed: %v", err))
		return fmt.Errorf("agent load failed for run %s: %w", runID, err)
	}

	experiment := trace.ExperimentForProject(projectID)
	if o.cfg.LocalSuiteScope {
		experiment = trace.ExperimentForLocalSuite(st.Name)
	}
	traceClient := trace.NewClient(experiment)
	defer func() { _ = traceClient.Shutdown(context.WithoutCancel(ctx)) }()

	caseRunner := runner.NewRunner(o.client, o.scorers, traceClient, o.logger)

	parallel := st.Parallel
	stopOnFailure := st.StopOnFailure
	maxParallel := o.cfg.MaxParallelCases
	if rn.Config != nil {
		if rn.Config.Parallel != nil {
			parallel = *rn.Config.Parallel
		}
		if rn.Config.StopOnFailure != nil {
			stopOnFailure = *rn.Config.StopOnFailure
		}
		if rn.Config.MaxParallelCases != nil {
			maxParallel = *rn.Config.MaxParallelCases
		}
	}

	var schedErr error
	if parallel {
		schedErr = o.runParallel(runCtx, rn, st, cases, ag, caseRunner, maxParallel)
	} else {
		schedErr = o.runSequential(runCtx, rn, st, cases, ag, caseRunner, stopOnFailure)
	}

	if schedErr != nil && runCtx.Err() == nil {
		o.failRun(ctx, runID, schedErr.Error())
		return schedErr
	}
	if runCtx.Err() != nil {
		// Cancelled: the status row is already terminal, no summary.
		o.logger.Info("run cancelled", slog.String("run_id", runID))
		return nil
	}

	results, err := o.runs.ListResults(ctx, projectID, runID, false)
	if err != nil {
		o.failRun(ctx, runID, fmt.Sprintf("failed to load results for summary: %v", err))
		return err
	}
	summary := aggregateSummary(results)

	swapped, err := o.runs.CompleteRun(ctx, runID, run.StatusCompleted, summary)
	if err != nil {
		return err
	}
	if !swapped {
		o.logger.Info("terminal write skipped, run no longer running", slog.String("run_id", runID))
		return nil
	}
	metrics.RunsFinished.WithLabelValues(string(run.StatusCompleted)).Inc()
	o.logger.Info("run completed",
		slog.String("run_id", runID),
		slog.Int("total_cases", summary.TotalCases),
		slog.Int("passed", summary.Passed),
		slog.Float64("avg_score", summary.AvgScore))
	return nil
}

// runParallel dispatches cases over a bounded worker pool. Individual
// case failures never abort the schedule; store failures do.
func (o *Orchestrator) runParallel(ctx context.Context, rn *ent.Run, st *ent.Suite, cases []*ent.TestCase, ag agent.Agent, caseRunner *runner.Runner, maxParallel int) error {
	if maxParallel > len(cases) {
		maxParallel = len(cases)
	}

	// A worker dying on a store error cancels the schedule, so the feed
	// loop never blocks on a channel with no receivers left. The run
	// context stays untouched; the caller tells a store failure apart
	// from a cancellation by it.
	schedCtx, stopSched := context.WithCancel(ctx)
	defer stopSched()

	caseCh := make(chan *ent.TestCase)
	errCh := make(chan error, len(cases))
	var wg sync.WaitGroup

	for i := 0; i < maxParallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tc := range caseCh {
				if schedCtx.Err() != nil {
					return
				}
				if _, err := caseRunner.RunCase(schedCtx, rn, st, tc, ag); err != nil {
					errCh <- err
					stopSched()
					return
				}
			}
		}()
	}

feed:
	for _, tc := range cases {
		select {
		case caseCh <- tc:
		case <-schedCtx.Done():
			break feed
		}
	}
	close(caseCh)
	wg.Wait()
	close(errCh)

	return <-errCh
}

// runSequential dispatches cases in declared order, optionally stopping
// after the first non-passing result.
func (o *Orchestrator) runSequential(ctx context.Context, rn *ent.Run, st *ent.Suite, cases []*ent.TestCase, ag agent.Agent, caseRunner *runner.Runner, stopOnFailure bool) error {
	for _, tc := range cases {
		if ctx.Err() != nil {
			return nil
		}
		res, err := caseRunner.RunCase(ctx, rn, st, tc, ag)
		if err != nil {
			return err
		}
		if stopOnFailure && !res.Passed {
			o.logger.Info("stopping after first failure",
				slog.String("run_id", rn.ID),
				slog.String("case", tc.Name))
			return nil
		}
	}
	return nil
}

// startHeartbeat refreshes liveness and polls for an external cancel.
// The returned stop function is idempotent.
func (o *Orchestrator) startHeartbeat(ctx context.Context, projectID, runID string, cancel context.CancelFunc) func() {
	ticker := time.NewTicker(o.cfg.HeartbeatInterval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := o.runs.Heartbeat(ctx, runID); err != nil {
					o.logger.Warn("heartbeat failed", slog.String("run_id", runID), slog.Any("error", err))
					continue
				}
				current, err := o.runs.GetRun(ctx, projectID, runID)
				if err != nil {
					continue
				}
				if current.Status == run.StatusCancelled {
					o.logger.Info("cancel observed, interrupting", slog.String("run_id", runID))
					cancel()
					return
				}
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// failRun writes the failed terminal state with an explanatory summary.
func (o *Orchestrator) failRun(ctx context.Context, runID, message string) {
	metrics.RunsFinished.WithLabelValues(string(run.StatusFailed)).Inc()
	_, err := o.runs.CompleteRun(context.WithoutCancel(ctx), runID, run.StatusFailed, &models.RunSummary{Error: message})
	if err != nil {
		o.logger.Error("failed to mark run failed",
			slog.String("run_id", runID),
			slog.Any("error", err))
	}
}
