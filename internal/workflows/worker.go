package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ryft-xyz/ryft-indexer/internal/domain"
)

// WorkerCore defines the interface for the orchestration workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// OnboardWallet runs the wallet onboarding chain
	OnboardWallet(ctx workflow.Context, request domain.WalletOnboardingRequest) error

	// RefreshCollection reindexes a collection's tokens, rarity and links
	RefreshCollection(ctx workflow.Context, collectionID int64) error

	// RefreshAllMetrics refreshes market statistics for every released collection
	RefreshAllMetrics(ctx workflow.Context) error

	// RefreshTrending snapshots the trending rankings
	RefreshTrending(ctx workflow.Context) error

	// RefreshAllHistories refreshes the 30-day series for every released collection
	RefreshAllHistories(ctx workflow.Context) error

	// RecordEthPrice stores the current ETH/USD spot price
	RecordEthPrice(ctx workflow.Context) error

	// SnapshotPortfolios records portfolio snapshots for all processed wallets
	SnapshotPortfolios(ctx workflow.Context) error

	// SyncCollectionTransfers advances the transfer backfill for every released collection
	SyncCollectionTransfers(ctx workflow.Context) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{executor: executor}
}

// withFetchOptions configures options for activities dominated by provider
// calls: generous timeout for multi-page walks, retries for transient failures
func withFetchOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	})
}

// withPersistOptions configures options for store-only activities. These
// rewrite state, so they run once and surface failures to the workflow.
func withPersistOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
}
