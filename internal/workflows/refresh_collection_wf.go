package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// RefreshCollection reindexes a collection: fetch every token with
// metadata, recompute rarity, then relink transfer history and holdings
// that predate the index.
func (w *workerCore) RefreshCollection(ctx workflow.Context, collectionID int64) error {
	logger.InfoWf(ctx, "Starting collection refresh", zap.Int64("collection_id", collectionID))

	fetchCtx := withFetchOptions(ctx)
	persistCtx := withPersistOptions(ctx)

	var tokenCount int
	err := workflow.ExecuteActivity(fetchCtx, w.executor.FetchCollectionNFTs, collectionID).Get(fetchCtx, &tokenCount)
	if err != nil {
		return fmt.Errorf("failed to fetch collection NFTs: %w", err)
	}
	if tokenCount == 0 {
		logger.InfoWf(ctx, "Collection has no tokens, skipping rarity",
			zap.Int64("collection_id", collectionID))
		return nil
	}

	err = workflow.ExecuteActivity(persistCtx, w.executor.ComputeCollectionRarity, collectionID).Get(persistCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to compute collection rarity: %w", err)
	}

	// Relinking is best effort: failures leave rows unlinked for the next
	// refresh rather than undoing the index
	var linkedTransactions int
	err = workflow.ExecuteActivity(persistCtx, w.executor.RelinkTransactions, collectionID).Get(persistCtx, &linkedTransactions)
	if err != nil {
		logger.WarnWf(ctx, "Failed to relink transactions",
			zap.Int64("collection_id", collectionID),
			zap.Error(err))
	}

	var linkedHoldings int
	err = workflow.ExecuteActivity(persistCtx, w.executor.RelinkWalletHoldings, collectionID).Get(persistCtx, &linkedHoldings)
	if err != nil {
		logger.WarnWf(ctx, "Failed to relink wallet holdings",
			zap.Int64("collection_id", collectionID),
			zap.Error(err))
	}

	logger.InfoWf(ctx, "Collection refresh completed",
		zap.Int64("collection_id", collectionID),
		zap.Int("tokens", tokenCount),
		zap.Int("linked_transactions", linkedTransactions),
		zap.Int("linked_holdings", linkedHoldings))

	return nil
}
