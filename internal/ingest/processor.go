package ingest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/store"
	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
	"github.com/ryft-xyz/ryft-indexer/internal/webhook"
)

// Processor applies address activity notifications to wallet state
//
//go:generate mockgen -source=processor.go -destination=../mocks/ingest_processor.go -package=mocks -mock_names=Processor=MockIngestProcessor
type Processor interface {
	// Process applies every NFT transfer in the payload. Malformed items
	// are skipped, store failures abort the batch.
	Process(ctx context.Context, payload *webhook.Payload) error
}

// ActivityProcessor implements webhook activity ingestion
type ActivityProcessor struct {
	store          store.Store
	gatingContract string
	json           adapter.JSON
}

// NewProcessor creates a webhook activity processor
func NewProcessor(s store.Store, gatingContract string, json adapter.JSON) Processor {
	return &ActivityProcessor{
		store:          s,
		gatingContract: strings.ToLower(gatingContract),
		json:           json,
	}
}

// Process applies every NFT transfer in the payload
func (p *ActivityProcessor) Process(ctx context.Context, payload *webhook.Payload) error {
	for _, activity := range payload.Event.Activity {
		if activity.Category == webhook.CategoryToken {
			continue
		}

		if err := p.processActivity(ctx, payload, activity); err != nil {
			return err
		}
	}
	return nil
}

func (p *ActivityProcessor) processActivity(ctx context.Context, payload *webhook.Payload, activity webhook.Activity) error {
	tokenID, quantity, ok := decodeToken(activity)
	if !ok {
		logger.WarnCtx(ctx, "skipping activity item with undecodable token",
			zap.String("transaction_hash", activity.Hash),
			zap.String("contract_address", activity.RawContract.Address))
		return nil
	}

	from := strings.ToLower(activity.FromAddress)
	to := strings.ToLower(activity.ToAddress)
	contract := strings.ToLower(activity.RawContract.Address)

	priceETH := activity.Value
	priceUSD := p.fiatValue(ctx, payload, priceETH)
	nftID := p.resolveNFT(ctx, contract, tokenID)
	blockNumber := decodeBlockNumber(activity.BlockNum)

	raw, err := p.json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	base := schema.Transaction{
		NFTID:           nftID,
		TransferFrom:    from,
		TransferTo:      to,
		ContractAddress: contract,
		TokenID:         tokenID,
		Quantity:        quantity,
		TransactionHash: activity.Hash,
		BlockHash:       activity.BlockHash,
		BlockNumber:     blockNumber,
		TransactionDate: payload.CreatedAt,
		Raw:             datatypes.JSON(raw),
		PriceETH:        priceETH,
		PriceUSD:        priceUSD,
	}

	if !domain.IsNullAddress(from) {
		if err := p.applySenderSide(ctx, from, contract, tokenID, base, priceETH); err != nil {
			return err
		}
	}

	if !domain.IsNullAddress(to) {
		if err := p.applyRecipientSide(ctx, to, contract, tokenID, nftID, base, priceETH); err != nil {
			return err
		}
	}

	return nil
}

// applySenderSide records the outgoing transfer and drops the holding for
// a locally known sender wallet. Unknown senders are ignored.
func (p *ActivityProcessor) applySenderSide(ctx context.Context, from, contract, tokenID string, base schema.Transaction, priceETH float64) error {
	wallet, err := p.store.GetWalletByAddress(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to look up sender wallet: %w", err)
	}
	if wallet == nil {
		return nil
	}

	transaction := base
	transaction.WalletID = &wallet.ID
	transaction.TransactionType = string(domain.ClassifyWalletTransfer(from, base.TransferFrom, base.TransferTo, priceETH))
	if err := p.store.CreateTransactionIgnore(ctx, &transaction); err != nil {
		return fmt.Errorf("failed to record sender transaction: %w", err)
	}

	if err := p.store.DeleteWalletNFT(ctx, wallet.ID, contract, tokenID); err != nil {
		return fmt.Errorf("failed to remove holding: %w", err)
	}

	if contract == p.gatingContract {
		if err := p.store.SetWalletMembership(ctx, wallet.ID, false); err != nil {
			return fmt.Errorf("failed to revoke membership: %w", err)
		}
	}

	return nil
}

// applyRecipientSide records the incoming transfer and creates the holding
// for a locally known recipient wallet. Unknown recipients are ignored.
func (p *ActivityProcessor) applyRecipientSide(ctx context.Context, to, contract, tokenID string, nftID *int64, base schema.Transaction, priceETH float64) error {
	wallet, err := p.store.GetWalletByAddress(ctx, to)
	if err != nil {
		return fmt.Errorf("failed to look up recipient wallet: %w", err)
	}
	if wallet == nil {
		return nil
	}

	transaction := base
	transaction.WalletID = &wallet.ID
	transaction.TransactionType = string(domain.ClassifyWalletTransfer(to, base.TransferFrom, base.TransferTo, priceETH))
	if err := p.store.CreateTransactionIgnore(ctx, &transaction); err != nil {
		return fmt.Errorf("failed to record recipient transaction: %w", err)
	}

	holding := schema.WalletNFT{
		WalletID:        wallet.ID,
		NFTID:           nftID,
		NFTRawData:      base.Raw,
		ContractAddress: contract,
		TokenID:         tokenID,
	}
	if err := p.store.CreateWalletNFTIgnore(ctx, &holding); err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}

	if contract == p.gatingContract {
		if err := p.store.SetWalletMembership(ctx, wallet.ID, true); err != nil {
			return fmt.Errorf("failed to grant membership: %w", err)
		}
	}

	return nil
}

// fiatValue converts the transfer value to USD using the most recent
// recorded spot price at or before the notification time. Missing price
// data degrades to zero rather than failing the batch.
func (p *ActivityProcessor) fiatValue(ctx context.Context, payload *webhook.Payload, priceETH float64) float64 {
	if priceETH <= 0 {
		return 0
	}

	price, err := p.store.GetEthPriceAt(ctx, payload.CreatedAt)
	if err != nil {
		logger.WarnCtx(ctx, "failed to look up eth price for webhook transfer", zap.Error(err))
		return 0
	}
	if price == nil {
		return 0
	}

	return price.USD * priceETH
}

// resolveNFT links the transfer to a locally indexed NFT when the
// collection is known. Lookup failures degrade to an unlinked row.
func (p *ActivityProcessor) resolveNFT(ctx context.Context, contract, tokenID string) *int64 {
	collection, err := p.store.GetCollectionByAddress(ctx, contract)
	if err != nil {
		logger.WarnCtx(ctx, "failed to look up collection for webhook transfer",
			zap.String("contract_address", contract), zap.Error(err))
		return nil
	}
	if collection == nil {
		return nil
	}

	nft, err := p.store.GetNFTByToken(ctx, collection.ID, tokenID)
	if err != nil || nft == nil {
		return nil
	}

	return &nft.ID
}

// decodeToken extracts the decimal token id and quantity of an activity
// item. ERC-1155 items carry both as hex in the metadata array, ERC-721
// items carry a hex token id and always move a quantity of one.
func decodeToken(activity webhook.Activity) (tokenID string, quantity int64, ok bool) {
	hexID := activity.ERC721TokenID
	quantity = 1

	if len(activity.ERC1155Metadata) > 0 {
		hexID = activity.ERC1155Metadata[0].TokenID
		if q, err := strconv.ParseInt(strings.TrimPrefix(activity.ERC1155Metadata[0].Value, "0x"), 16, 64); err == nil && q > 0 {
			quantity = q
		}
	}

	if hexID == "" {
		return "", 0, false
	}

	decoded, err := domain.DecodeHexTokenID(hexID)
	if err != nil {
		return "", 0, false
	}

	return decoded, quantity, true
}

func decodeBlockNumber(hexNum string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(hexNum, "0x"), 16, 64)
	if err != nil {
		return 0
	}
	return n
}
