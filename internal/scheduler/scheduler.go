package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/temporal"
	"github.com/ryft-xyz/ryft-indexer/internal/workflows"
)

// Scheduler defines the interface for the periodic refresh service
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Start begins the scheduler's ticker loops
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the scheduler
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging and identification
	Name() string
}

// Config holds the refresh intervals and target task queues. A zero
// interval disables that loop.
type Config struct {
	MetricsInterval      time.Duration
	TrendingInterval     time.Duration
	HistoryInterval      time.Duration
	EthPriceInterval     time.Duration
	PortfolioInterval    time.Duration
	TransferSyncInterval time.Duration

	DefaultTaskQueue string
	LongTaskQueue    string
}

// job is one periodic workflow trigger
type job struct {
	name      string
	interval  time.Duration
	taskQueue string
	workflow  interface{}
}

// refreshScheduler drives the scheduled refresh workflows on fixed intervals
type refreshScheduler struct {
	config       Config
	clock        adapter.Clock
	orchestrator temporal.TemporalOrchestrator
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// New creates a new refresh scheduler
func New(cfg Config, clock adapter.Clock, orchestrator temporal.TemporalOrchestrator) Scheduler {
	return &refreshScheduler{
		config:       cfg,
		clock:        clock,
		orchestrator: orchestrator,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the scheduler's name
func (s *refreshScheduler) Name() string {
	return "refresh-scheduler"
}

// jobs builds the enabled trigger list. Backfill runs on the long queue
// because one pass can take far longer than the lightweight refreshes.
func (s *refreshScheduler) jobs() []job {
	w := workflows.NewWorkerCore(nil)
	all := []job{
		{"refresh-all-metrics", s.config.MetricsInterval, s.config.DefaultTaskQueue, w.RefreshAllMetrics},
		{"refresh-trending", s.config.TrendingInterval, s.config.DefaultTaskQueue, w.RefreshTrending},
		{"refresh-all-histories", s.config.HistoryInterval, s.config.DefaultTaskQueue, w.RefreshAllHistories},
		{"record-eth-price", s.config.EthPriceInterval, s.config.DefaultTaskQueue, w.RecordEthPrice},
		{"snapshot-portfolios", s.config.PortfolioInterval, s.config.DefaultTaskQueue, w.SnapshotPortfolios},
		{"sync-collection-transfers", s.config.TransferSyncInterval, s.config.LongTaskQueue, w.SyncCollectionTransfers},
	}

	enabled := make([]job, 0, len(all))
	for _, j := range all {
		if j.interval > 0 {
			enabled = append(enabled, j)
		}
	}
	return enabled
}

// Start begins one ticker loop per enabled job and blocks until the
// context is canceled or Stop is called
func (s *refreshScheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	jobs := s.jobs()
	logger.InfoCtx(ctx, "Starting refresh scheduler",
		zap.Int("jobs", len(jobs)),
	)

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			s.runLoop(ctx, j)
		}(j)
	}

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Refresh scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Refresh scheduler stop requested")
	}

	wg.Wait()
	return nil
}

// Stop gracefully stops the scheduler with timeout support
func (s *refreshScheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping refresh scheduler")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Refresh scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Refresh scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runLoop fires one job on its interval until shutdown
func (s *refreshScheduler) runLoop(ctx context.Context, j job) {
	ticker := s.clock.NewTicker(j.interval)
	defer ticker.Stop()

	logger.InfoCtx(ctx, "Scheduler loop started",
		zap.String("job", j.name),
		zap.Duration("interval", j.interval),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.Chan():
			s.trigger(ctx, j)
		}
	}
}

// trigger enqueues one run of the job's workflow. Failures are logged and
// the loop keeps its cadence.
func (s *refreshScheduler) trigger(ctx context.Context, j job) {
	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("%s-%d", j.name, s.clock.Now().Unix()),
		TaskQueue:             j.taskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	run, err := s.orchestrator.ExecuteWorkflow(ctx, options, j.workflow)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("job", j.name),
			zap.String("task_queue", j.taskQueue),
		)
		return
	}

	if run != nil {
		logger.InfoCtx(ctx, "Scheduled workflow started",
			zap.String("job", j.name),
			zap.String("workflow_id", run.GetID()),
			zap.String("run_id", run.GetRunID()),
		)
	}
}
