package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// OnboardWallet runs the wallet onboarding chain. Full mode covers member
// wallets: holdings, portfolio snapshot, transfer history, access gate,
// ENS, completion and thumbnail. Tracked mode is the shorter pipeline for
// watched third-party wallets and skips the member-only steps.
func (w *workerCore) OnboardWallet(ctx workflow.Context, request domain.WalletOnboardingRequest) error {
	logger.InfoWf(ctx, "Starting wallet onboarding",
		zap.String("address", request.Address),
		zap.String("mode", string(request.Mode)))

	fetchCtx := withFetchOptions(ctx)
	persistCtx := withPersistOptions(ctx)

	// Step 1: subscribe the wallet to activity notifications so transfers
	// observed during onboarding are not lost. A wallet without a webhook
	// subscription silently goes stale, so the chain stops here.
	err := workflow.ExecuteActivity(fetchCtx, w.executor.RegisterWalletWebhook, request.Address).Get(fetchCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to register wallet webhook: %w", err)
	}

	// Step 2: fetch the owned tokens and persist the holdings
	var tokenCount int
	err = workflow.ExecuteActivity(fetchCtx, w.executor.FetchOwnedTokens, request.Address).Get(fetchCtx, &tokenCount)
	if err != nil {
		return fmt.Errorf("failed to fetch owned tokens: %w", err)
	}

	err = workflow.ExecuteActivity(persistCtx, w.executor.PersistWalletOwnership, request.Address).Get(persistCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to persist wallet ownership: %w", err)
	}

	// Step 3: member-only portfolio snapshot
	if request.Mode == domain.OnboardingModeFull {
		var total float64
		err = workflow.ExecuteActivity(persistCtx, w.executor.ComputePortfolioTotal, request.Address).Get(persistCtx, &total)
		if err != nil {
			return fmt.Errorf("failed to compute portfolio total: %w", err)
		}
		logger.InfoWf(ctx, "Portfolio total computed",
			zap.String("address", request.Address),
			zap.Float64("total_eth", total))
	}

	// Step 4: backfill recent transfers
	var transactionCount int
	err = workflow.ExecuteActivity(fetchCtx, w.executor.FetchWalletTransactions, request.Address).Get(fetchCtx, &transactionCount)
	if err != nil {
		return fmt.Errorf("failed to fetch wallet transactions: %w", err)
	}

	// Step 5: member-only access gate check
	if request.Mode == domain.OnboardingModeFull {
		var isMember bool
		err = workflow.ExecuteActivity(persistCtx, w.executor.CheckWalletAccessGate, request.Address).Get(persistCtx, &isMember)
		if err != nil {
			return fmt.Errorf("failed to check wallet access gate: %w", err)
		}
	}

	// Step 6: resolve ENS and mark onboarding complete
	err = workflow.ExecuteActivity(fetchCtx, w.executor.FinalizeWallet, request.Address).Get(fetchCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to finalize wallet: %w", err)
	}

	// Step 7: derive a thumbnail from the holdings. Runs in both modes so a
	// member wallet that is also tracked by someone else keeps its image
	// fresh. The wallet is already usable at this point, so a failure here
	// only logs.
	err = workflow.ExecuteActivity(persistCtx, w.executor.DeriveTrackedWalletThumbnail, request.Address).Get(persistCtx, nil)
	if err != nil {
		logger.WarnWf(ctx, "Failed to derive tracked wallet thumbnail",
			zap.String("address", request.Address),
			zap.Error(err))
	}

	logger.InfoWf(ctx, "Wallet onboarding completed",
		zap.String("address", request.Address),
		zap.Int("tokens", tokenCount),
		zap.Int("transactions", transactionCount))

	return nil
}
