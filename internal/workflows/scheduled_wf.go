package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// forEachReleasedCollection fans one activity out over every released
// collection. A single collection failing is logged and skipped so one
// bad contract cannot starve the rest of the schedule.
func (w *workerCore) forEachReleasedCollection(ctx workflow.Context, name string, activity interface{}) error {
	fetchCtx := withFetchOptions(ctx)

	var collectionIDs []int64
	err := workflow.ExecuteActivity(fetchCtx, w.executor.ListReleasedCollectionIDs).Get(fetchCtx, &collectionIDs)
	if err != nil {
		return fmt.Errorf("failed to list released collections: %w", err)
	}

	failures := 0
	for _, collectionID := range collectionIDs {
		if err := workflow.ExecuteActivity(fetchCtx, activity, collectionID).Get(fetchCtx, nil); err != nil {
			failures++
			logger.WarnWf(ctx, "Scheduled collection refresh step failed",
				zap.String("step", name),
				zap.Int64("collection_id", collectionID),
				zap.Error(err))
		}
	}

	logger.InfoWf(ctx, "Scheduled refresh completed",
		zap.String("step", name),
		zap.Int("collections", len(collectionIDs)),
		zap.Int("failures", failures))

	return nil
}

// RefreshAllMetrics refreshes market statistics for every released collection
func (w *workerCore) RefreshAllMetrics(ctx workflow.Context) error {
	return w.forEachReleasedCollection(ctx, "metrics", w.executor.RefreshCollectionMetrics)
}

// RefreshAllHistories refreshes the 30-day series for every released collection
func (w *workerCore) RefreshAllHistories(ctx workflow.Context) error {
	return w.forEachReleasedCollection(ctx, "histories", w.executor.RefreshCollectionHistories)
}

// SyncCollectionTransfers advances the transfer backfill for every released collection
func (w *workerCore) SyncCollectionTransfers(ctx workflow.Context) error {
	return w.forEachReleasedCollection(ctx, "transfers", w.executor.BackfillCollectionTransfers)
}

// RefreshTrending snapshots the trending rankings
func (w *workerCore) RefreshTrending(ctx workflow.Context) error {
	fetchCtx := withFetchOptions(ctx)

	err := workflow.ExecuteActivity(fetchCtx, w.executor.RefreshTrendingCollections).Get(fetchCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to refresh trending collections: %w", err)
	}
	return nil
}

// RecordEthPrice stores the current ETH/USD spot price
func (w *workerCore) RecordEthPrice(ctx workflow.Context) error {
	fetchCtx := withFetchOptions(ctx)

	err := workflow.ExecuteActivity(fetchCtx, w.executor.RecordEthPrice).Get(fetchCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to record eth price: %w", err)
	}
	return nil
}

// SnapshotPortfolios records portfolio snapshots for all processed wallets
func (w *workerCore) SnapshotPortfolios(ctx workflow.Context) error {
	fetchCtx := withFetchOptions(ctx)

	var count int
	err := workflow.ExecuteActivity(fetchCtx, w.executor.SnapshotWalletPortfolios).Get(fetchCtx, &count)
	if err != nil {
		return fmt.Errorf("failed to snapshot wallet portfolios: %w", err)
	}

	logger.InfoWf(ctx, "Wallet portfolios snapshotted", zap.Int("wallets", count))
	return nil
}
