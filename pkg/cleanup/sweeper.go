// Package cleanup fails runs orphaned by a crashed or restarted
// executor. A run left in the running state without heartbeats is
// unrecoverable; the sweeper marks it failed so dashboards and gates do
// not wait on it forever.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/neonhq/neon/pkg/metrics"
	"github.com/neonhq/neon/pkg/services"
)

const (
	// DefaultStaleAfter is how long a running run may go without a
	// heartbeat before it is considered orphaned.
	DefaultStaleAfter = 2 * time.Minute
	// DefaultSchedule sweeps once a minute.
	DefaultSchedule = "* * * * *"
)

// Sweeper periodically fails stale runs.
type Sweeper struct {
	runs       *services.RunService
	logger     *slog.Logger
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithStaleAfter overrides the heartbeat staleness cutoff.
func WithStaleAfter(d time.Duration) Option {
	return func(s *Sweeper) { s.staleAfter = d }
}

// WithSchedule overrides the cron schedule.
func WithSchedule(spec string) Option {
	return func(s *Sweeper) { s.schedule = spec }
}

// NewSweeper creates a sweeper; Start arms it.
func NewSweeper(runs *services.RunService, logger *slog.Logger, opts ...Option) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sweeper{
		runs:       runs,
		logger:     logger,
		staleAfter: DefaultStaleAfter,
		schedule:   DefaultSchedule,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start schedules the sweep and runs one immediately to clean up after
// the previous process.
func (s *Sweeper) Start(ctx context.Context) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}
	s.Sweep(ctx)
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep fails every run whose heartbeat is older than the cutoff.
// Returns the number of runs it transitioned.
func (s *Sweeper) Sweep(ctx context.Context) int {
	cutoff := time.Now().Add(-s.staleAfter)
	stale, err := s.runs.FindStaleRuns(ctx, cutoff)
	if err != nil {
		s.logger.Error("stale run query failed", slog.Any("error", err))
		return 0
	}

	failed := 0
	for _, rn := range stale {
		swapped, err := s.runs.FailStaleRun(ctx, rn.ID)
		if err != nil {
			s.logger.Error("failed to fail stale run",
				slog.String("run_id", rn.ID),
				slog.Any("error", err))
			continue
		}
		if swapped {
			failed++
			metrics.StaleRunsFailed.Inc()
			s.logger.Warn("stale run marked failed",
				slog.String("run_id", rn.ID),
				slog.Time("cutoff", cutoff))
		}
	}
	return failed
}
