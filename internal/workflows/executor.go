package workflows

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/pagination"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/alchemy"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/coingecko"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/mnemonic"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/nftport"
	"github.com/ryft-xyz/ryft-indexer/internal/rarity"
	"github.com/ryft-xyz/ryft-indexer/internal/store"
	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
)

const (
	// ownedTokensPageSize is the page size of the owned-token walker
	ownedTokensPageSize = 500

	// transfersPageSize is the page size of the collection transfer walker
	transfersPageSize = 500

	// relinkBatchSize bounds one relink pass over unlinked transactions
	relinkBatchSize = 1000

	// trendingLimit is how many collections each trending ranking carries
	trendingLimit = 20
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// RegisterWalletWebhook subscribes the wallet to address activity notifications
	RegisterWalletWebhook(ctx context.Context, address string) error

	// FetchOwnedTokens walks the wallet's owned tokens and stores the raw payload.
	// Returns the number of tokens fetched.
	FetchOwnedTokens(ctx context.Context, address string) (int, error)

	// PersistWalletOwnership rebuilds the wallet's holdings from the stored raw payload
	PersistWalletOwnership(ctx context.Context, address string) error

	// ComputePortfolioTotal estimates the wallet's portfolio value from collection
	// floor prices and records a portfolio snapshot. Returns the total in ETH.
	ComputePortfolioTotal(ctx context.Context, address string) (float64, error)

	// FetchWalletTransactions backfills the wallet's recent transfers in both
	// directions. Returns the number of transactions recorded.
	FetchWalletTransactions(ctx context.Context, address string) (int, error)

	// CheckWalletAccessGate flips the wallet's membership flag from its holdings.
	// Returns the resulting membership state.
	CheckWalletAccessGate(ctx context.Context, address string) (bool, error)

	// FinalizeWallet resolves ENS names and marks onboarding complete
	FinalizeWallet(ctx context.Context, address string) error

	// DeriveTrackedWalletThumbnail picks a thumbnail from the wallet's most
	// valuable displayable holding
	DeriveTrackedWalletThumbnail(ctx context.Context, address string) error

	// FetchCollectionNFTs walks a collection's tokens with metadata and replaces
	// the stored set. Returns the number of tokens stored.
	FetchCollectionNFTs(ctx context.Context, collectionID int64) (int, error)

	// ComputeCollectionRarity scores every stored token and rebuilds the
	// collection's attribute table
	ComputeCollectionRarity(ctx context.Context, collectionID int64) error

	// RelinkTransactions points previously unlinked transactions at freshly
	// indexed NFTs. Returns the number of transactions linked.
	RelinkTransactions(ctx context.Context, collectionID int64) (int, error)

	// RelinkWalletHoldings points previously unlinked holdings at freshly
	// indexed NFTs. Returns the number of holdings linked.
	RelinkWalletHoldings(ctx context.Context, collectionID int64) (int, error)

	// ListReleasedCollectionIDs returns the IDs of collections included in
	// scheduled refreshes
	ListReleasedCollectionIDs(ctx context.Context) ([]int64, error)

	// RefreshCollectionMetrics fetches market statistics for one collection.
	// Collections flagged as unsupported by the provider are skipped without
	// a provider call.
	RefreshCollectionMetrics(ctx context.Context, collectionID int64) error

	// RefreshCollectionHistories fetches the 30-day price and owners series
	RefreshCollectionHistories(ctx context.Context, collectionID int64) error

	// RefreshTrendingCollections snapshots the three trending rankings
	RefreshTrendingCollections(ctx context.Context) error

	// RecordEthPrice stores the current ETH/USD spot price
	RecordEthPrice(ctx context.Context) error

	// SnapshotWalletPortfolios records a portfolio snapshot for every processed
	// wallet. Returns the number of wallets snapshotted.
	SnapshotWalletPortfolios(ctx context.Context) (int, error)

	// BackfillCollectionTransfers advances the collection's transfer history
	// from its block checkpoint. Returns the number of transfers recorded.
	BackfillCollectionTransfers(ctx context.Context, collectionID int64) (int, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	store          store.Store
	alchemy        alchemy.Client
	mnemonic       mnemonic.Client
	nftport        nftport.Client
	coingecko      coingecko.Client
	json           adapter.JSON
	clock          adapter.Clock
	gatingContract string
}

// NewExecutor creates a new executor instance
func NewExecutor(
	store store.Store,
	alchemyClient alchemy.Client,
	mnemonicClient mnemonic.Client,
	nftportClient nftport.Client,
	coingeckoClient coingecko.Client,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
	gatingContract string,
) Executor {
	return &executor{
		store:          store,
		alchemy:        alchemyClient,
		mnemonic:       mnemonicClient,
		nftport:        nftportClient,
		coingecko:      coingeckoClient,
		json:           jsonAdapter,
		clock:          clock,
		gatingContract: strings.ToLower(gatingContract),
	}
}

// audit writes a best-effort audit row for an outbound provider call
func (e *executor) audit(ctx context.Context, provider, operation string) {
	if err := e.store.RecordAPICall(ctx, provider, operation); err != nil {
		logger.WarnCtx(ctx, "failed to record API call audit row",
			zap.String("provider", provider),
			zap.String("operation", operation),
			zap.Error(err))
	}
}

// RegisterWalletWebhook subscribes the wallet to address activity notifications
func (e *executor) RegisterWalletWebhook(ctx context.Context, address string) error {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return err
	}

	e.audit(ctx, domain.ProviderAlchemyNFT, "update_webhook_addresses")
	if err := e.alchemy.AddWebhookAddress(ctx, address); err != nil {
		return fmt.Errorf("failed to register wallet webhook: %w", err)
	}

	return nil
}

// FetchOwnedTokens walks the wallet's owned tokens and stores the raw payload
func (e *executor) FetchOwnedTokens(ctx context.Context, address string) (int, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return 0, err
	}

	wallet, err := e.store.GetOrCreateWallet(ctx, address)
	if err != nil {
		return 0, err
	}

	e.audit(ctx, domain.ProviderMnemonic, "tokens_by_owner")
	tokens, err := pagination.Walk(ctx, e.clock, pagination.Options{PageSize: ownedTokensPageSize},
		func(ctx context.Context, cursor string) (pagination.Page[mnemonic.OwnedToken], error) {
			offset := 0
			if cursor != "" {
				offset, _ = strconv.Atoi(cursor)
			}

			resp, err := e.mnemonic.GetWalletNFTs(ctx, address, ownedTokensPageSize, offset)
			if err != nil {
				return pagination.Page[mnemonic.OwnedToken]{}, err
			}

			return pagination.Page[mnemonic.OwnedToken]{
				Items:      resp.Tokens,
				NextCursor: strconv.Itoa(offset + ownedTokensPageSize),
			}, nil
		})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch owned tokens: %w", err)
	}

	raw, err := e.json.Marshal(tokens)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal owned tokens: %w", err)
	}

	if err := e.store.SetWalletRawNFTData(ctx, wallet.ID, datatypes.JSON(raw)); err != nil {
		return 0, err
	}

	return len(tokens), nil
}

// PersistWalletOwnership rebuilds the wallet's holdings from the stored raw payload
func (e *executor) PersistWalletOwnership(ctx context.Context, address string) error {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	var tokens []mnemonic.OwnedToken
	if len(wallet.NFTsRawData) > 0 {
		if err := e.json.Unmarshal(wallet.NFTsRawData, &tokens); err != nil {
			return fmt.Errorf("failed to decode stored ownership payload: %w", err)
		}
	}

	if len(tokens) > domain.MaxWalletNFTs {
		tokens = tokens[:domain.MaxWalletNFTs]
	}

	holdings := make([]schema.WalletNFT, 0, len(tokens))
	for _, token := range tokens {
		contract := strings.ToLower(token.ContractAddress)

		raw, err := e.json.Marshal(token)
		if err != nil {
			logger.WarnCtx(ctx, "skipping owned token that does not marshal",
				zap.String("contract_address", contract),
				zap.String("token_id", token.TokenID),
				zap.Error(err))
			continue
		}

		holdings = append(holdings, schema.WalletNFT{
			WalletID:        wallet.ID,
			NFTID:           e.resolveNFT(ctx, contract, token.TokenID),
			NFTRawData:      datatypes.JSON(raw),
			ContractAddress: contract,
			TokenID:         token.TokenID,
		})
	}

	return e.store.ReplaceWalletNFTs(ctx, wallet.ID, holdings)
}

// ComputePortfolioTotal estimates the wallet's portfolio value from floor prices
func (e *executor) ComputePortfolioTotal(ctx context.Context, address string) (float64, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return 0, err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, domain.ErrWalletNotFound
	}

	total, err := e.portfolioValue(ctx, wallet.ID)
	if err != nil {
		return 0, err
	}

	record := schema.WalletPortfolioRecord{
		WalletID:       wallet.ID,
		Timestamp:      e.clock.Now(),
		PortfolioValue: total,
	}
	if err := e.store.CreatePortfolioRecord(ctx, &record); err != nil {
		return 0, err
	}

	return total, nil
}

// portfolioValue sums collection floor prices over the wallet's holdings
func (e *executor) portfolioValue(ctx context.Context, walletID int64) (float64, error) {
	holdings, err := e.store.GetWalletNFTs(ctx, walletID)
	if err != nil {
		return 0, err
	}

	counts := make(map[string]int)
	for _, holding := range holdings {
		counts[holding.ContractAddress]++
	}

	var total float64
	for contract, count := range counts {
		floor, err := e.collectionFloor(ctx, contract)
		if err != nil {
			return 0, err
		}
		total += floor * float64(count)
	}

	return total, nil
}

// collectionFloor returns the stored floor price of a contract, zero when
// the collection or its metrics are not indexed locally
func (e *executor) collectionFloor(ctx context.Context, contract string) (float64, error) {
	collection, err := e.store.GetCollectionByAddress(ctx, contract)
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, nil
	}

	metric, err := e.store.GetCollectionMetric(ctx, collection.ID)
	if err != nil {
		return 0, err
	}
	if metric == nil {
		return 0, nil
	}

	return metric.FloorPrice, nil
}

// FetchWalletTransactions backfills the wallet's recent transfers in both directions
func (e *executor) FetchWalletTransactions(ctx context.Context, address string) (int, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return 0, err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, domain.ErrWalletNotFound
	}

	e.audit(ctx, domain.ProviderAlchemyRPC, "eth_block_number")
	latest, err := e.alchemy.GetLatestBlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	fromBlock := latest - domain.WalletTransferLookbackDays*domain.BlocksPerDay
	if fromBlock < 0 {
		fromBlock = 0
	}

	var transactions []schema.Transaction
	for _, direction := range []alchemy.TransferDirection{
		alchemy.TransferDirectionReceived,
		alchemy.TransferDirectionSent,
	} {
		transfers, err := e.walkWalletTransfers(ctx, address, direction, fromBlock)
		if err != nil {
			return 0, err
		}

		for _, transfer := range transfers {
			transaction, ok := e.walletTransaction(ctx, wallet, transfer)
			if !ok {
				continue
			}
			transactions = append(transactions, transaction)
		}
	}

	if err := e.store.CreateTransactionsIgnore(ctx, transactions); err != nil {
		return 0, err
	}

	return len(transactions), nil
}

// walkWalletTransfers pages through one direction of a wallet's transfers
func (e *executor) walkWalletTransfers(ctx context.Context, address string, direction alchemy.TransferDirection, fromBlock int64) ([]alchemy.AssetTransfer, error) {
	e.audit(ctx, domain.ProviderAlchemyRPC, "get_asset_transfers")
	transfers, err := pagination.Walk(ctx, e.clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[alchemy.AssetTransfer], error) {
			result, err := e.alchemy.GetAssetTransfers(ctx, alchemy.AssetTransfersParams{
				FromBlock:     fromBlock,
				WalletAddress: address,
				Direction:     direction,
				PageKey:       cursor,
			})
			if err != nil {
				return pagination.Page[alchemy.AssetTransfer]{}, err
			}

			return pagination.Page[alchemy.AssetTransfer]{
				Items:      result.Transfers,
				NextCursor: result.PageKey,
			}, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s transfers: %w", direction, err)
	}
	return transfers, nil
}

// walletTransaction converts one provider transfer into a transaction row
func (e *executor) walletTransaction(ctx context.Context, wallet *schema.Wallet, transfer alchemy.AssetTransfer) (schema.Transaction, bool) {
	hexID := transfer.ERC721TokenID
	quantity := int64(1)
	if hexID == "" && len(transfer.ERC1155Metadata) > 0 {
		hexID = transfer.ERC1155Metadata[0].TokenID
		if q, err := strconv.ParseInt(strings.TrimPrefix(transfer.ERC1155Metadata[0].Value, "0x"), 16, 64); err == nil && q > 0 {
			quantity = q
		}
	}
	if hexID == "" {
		hexID = transfer.TokenID
	}

	tokenID, err := domain.DecodeHexTokenID(hexID)
	if err != nil {
		logger.WarnCtx(ctx, "skipping transfer with undecodable token id",
			zap.String("transaction_hash", transfer.Hash),
			zap.Error(err))
		return schema.Transaction{}, false
	}

	contract := strings.ToLower(transfer.RawContract.Address)
	from := strings.ToLower(transfer.From)
	to := strings.ToLower(transfer.To)

	blockNumber, err := strconv.ParseInt(strings.TrimPrefix(transfer.BlockNum, "0x"), 16, 64)
	if err != nil {
		blockNumber = 0
	}

	transactionDate := e.clock.Now()
	if ts, err := e.clock.Parse(time.RFC3339, transfer.Metadata.BlockTimestamp); err == nil {
		transactionDate = ts
	}

	priceUSD := 0.0
	if transfer.Value > 0 {
		if price, err := e.store.GetEthPriceAt(ctx, transactionDate); err == nil && price != nil {
			priceUSD = price.USD * transfer.Value
		}
	}

	raw, err := e.json.Marshal(transfer)
	if err != nil {
		return schema.Transaction{}, false
	}

	return schema.Transaction{
		WalletID:        &wallet.ID,
		NFTID:           e.resolveNFT(ctx, contract, tokenID),
		TransactionType: string(domain.ClassifyWalletTransfer(wallet.Address, from, to, transfer.Value)),
		TransferFrom:    from,
		TransferTo:      to,
		ContractAddress: contract,
		TokenID:         tokenID,
		Quantity:        quantity,
		TransactionHash: transfer.Hash,
		BlockNumber:     blockNumber,
		TransactionDate: transactionDate,
		Raw:             datatypes.JSON(raw),
		PriceETH:        transfer.Value,
		PriceUSD:        priceUSD,
	}, true
}

// CheckWalletAccessGate flips the wallet's membership flag from its holdings
func (e *executor) CheckWalletAccessGate(ctx context.Context, address string) (bool, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return false, err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return false, err
	}
	if wallet == nil {
		return false, domain.ErrWalletNotFound
	}

	holdings, err := e.store.GetWalletNFTs(ctx, wallet.ID)
	if err != nil {
		return false, err
	}

	isMember := false
	for _, holding := range holdings {
		if holding.ContractAddress == e.gatingContract {
			isMember = true
			break
		}
	}

	if err := e.store.SetWalletMembership(ctx, wallet.ID, isMember); err != nil {
		return false, err
	}

	return isMember, nil
}

// FinalizeWallet resolves ENS names and marks onboarding complete
func (e *executor) FinalizeWallet(ctx context.Context, address string) error {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	var primary string
	var domains datatypes.JSON

	e.audit(ctx, domain.ProviderMnemonic, "ens_by_address")
	resp, err := e.mnemonic.GetENSDomains(ctx, address)
	if err != nil {
		// ENS resolution failing should not leave the wallet half onboarded
		logger.WarnCtx(ctx, "failed to resolve ENS domains",
			zap.String("address", address),
			zap.Error(err))
	} else if len(resp.Entities) > 0 {
		primary = resp.Entities[0].Name

		names := make([]string, 0, len(resp.Entities))
		for _, entity := range resp.Entities {
			names = append(names, entity.Name)
		}
		if raw, err := e.json.Marshal(names); err == nil {
			domains = datatypes.JSON(raw)
		}
	}

	return e.store.SetWalletProcessed(ctx, wallet.ID, primary, domains)
}

// DeriveTrackedWalletThumbnail picks a thumbnail from the wallet's most
// valuable displayable holding
func (e *executor) DeriveTrackedWalletThumbnail(ctx context.Context, address string) error {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return err
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.ErrWalletNotFound
	}

	if _, err := e.store.GetOrCreateTrackedWallet(ctx, address, &wallet.ID); err != nil {
		return err
	}

	holdings, err := e.store.GetWalletNFTs(ctx, wallet.ID)
	if err != nil {
		return err
	}
	if len(holdings) == 0 {
		return nil
	}

	floors := make(map[string]float64)
	for _, holding := range holdings {
		if _, ok := floors[holding.ContractAddress]; ok {
			continue
		}
		floor, err := e.collectionFloor(ctx, holding.ContractAddress)
		if err != nil {
			return err
		}
		floors[holding.ContractAddress] = floor
	}

	sorted := make([]*schema.WalletNFT, len(holdings))
	copy(sorted, holdings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return floors[sorted[i].ContractAddress] > floors[sorted[j].ContractAddress]
	})

	for _, holding := range sorted {
		var token mnemonic.OwnedToken
		if err := e.json.Unmarshal(holding.NFTRawData, &token); err != nil {
			continue
		}
		if token.Metadata == nil || token.Metadata.Image == nil {
			continue
		}

		uri := token.Metadata.Image.URI
		// IPFS URIs do not render in an <img> tag without a gateway
		if uri == "" || strings.HasPrefix(uri, "ipfs://") {
			continue
		}

		return e.store.SetTrackedWalletThumbnail(ctx, address, uri)
	}

	return nil
}

// FetchCollectionNFTs walks a collection's tokens with metadata and replaces
// the stored set
func (e *executor) FetchCollectionNFTs(ctx context.Context, collectionID int64) (int, error) {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, domain.ErrCollectionNotFound
	}

	e.audit(ctx, domain.ProviderAlchemyNFT, "get_nfts_for_collection")
	tokens, err := pagination.Walk(ctx, e.clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[alchemy.CollectionNFT], error) {
			resp, err := e.alchemy.GetNFTsForCollection(ctx, collection.ContractAddress, cursor)
			if err != nil {
				return pagination.Page[alchemy.CollectionNFT]{}, err
			}

			return pagination.Page[alchemy.CollectionNFT]{
				Items:      resp.NFTs,
				NextCursor: resp.NextToken,
			}, nil
		})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch collection NFTs: %w", err)
	}

	nfts := make([]schema.NFT, 0, len(tokens))
	for _, token := range tokens {
		tokenID, err := domain.DecodeHexTokenID(token.ID.TokenID)
		if err != nil {
			logger.WarnCtx(ctx, "skipping token with undecodable id",
				zap.String("contract_address", collection.ContractAddress),
				zap.String("raw_token_id", token.ID.TokenID))
			continue
		}

		var meta alchemy.Metadata
		if len(token.Metadata) > 0 {
			if err := e.json.Unmarshal(token.Metadata, &meta); err != nil {
				logger.WarnCtx(ctx, "token metadata does not parse, keeping raw document",
					zap.String("contract_address", collection.ContractAddress),
					zap.String("token_id", tokenID))
			}
		}

		name := meta.Name
		if name == "" {
			name = token.Title
		}

		nfts = append(nfts, schema.NFT{
			CollectionID: collectionID,
			TokenID:      tokenID,
			Name:         name,
			ImageURL:     meta.Image,
			RawMetadata:  datatypes.JSON(token.Metadata),
			TraitCount:   len(meta.Attributes),
		})
	}

	if err := e.store.ReplaceCollectionNFTs(ctx, collectionID, nfts); err != nil {
		return 0, err
	}

	// A collection without a declared supply falls back to the fetched count
	// so the rarity divisor is never zero
	if collection.Supply == 0 {
		if err := e.store.UpdateCollectionSupply(ctx, collectionID, int64(len(nfts))); err != nil {
			return 0, err
		}
	}

	return len(nfts), nil
}

// ComputeCollectionRarity scores every stored token and rebuilds the
// collection's attribute table
func (e *executor) ComputeCollectionRarity(ctx context.Context, collectionID int64) error {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return domain.ErrCollectionNotFound
	}

	nfts, err := e.store.GetCollectionNFTs(ctx, collectionID, -1, 0)
	if err != nil {
		return err
	}
	if len(nfts) == 0 {
		return nil
	}

	tokens := make([]rarity.Token, 0, len(nfts))
	for _, nft := range nfts {
		tokens = append(tokens, rarity.Token{
			ID:     nft.TokenID,
			Traits: extractTraits(e.json, nft.RawMetadata),
		})
	}

	scores, attributes := rarity.Compute(tokens, collection.Supply)

	rows := make([]schema.CollectionAttribute, 0, len(attributes))
	for _, attribute := range attributes {
		rows = append(rows, schema.CollectionAttribute{
			CollectionID: collectionID,
			Name:         attribute.Name,
			Value:        attribute.Value,
			Occurrences:  attribute.Occurrences,
		})
	}
	if err := e.store.ReplaceCollectionAttributes(ctx, collectionID, rows); err != nil {
		return err
	}

	updates := make([]store.NFTScore, 0, len(scores))
	for _, score := range scores {
		updates = append(updates, store.NFTScore{
			TokenID:     score.TokenID,
			RarityScore: score.Total,
			Rank:        score.Rank,
		})
	}
	return e.store.UpdateNFTScores(ctx, collectionID, updates)
}

// extractTraits pulls (trait, value) pairs out of a raw metadata document
func extractTraits(json adapter.JSON, raw datatypes.JSON) []rarity.Trait {
	if len(raw) == 0 {
		return nil
	}

	var meta alchemy.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}

	traits := make([]rarity.Trait, 0, len(meta.Attributes))
	for _, attribute := range meta.Attributes {
		traits = append(traits, rarity.Trait{
			Name:  attribute.TraitType,
			Value: attributeValue(attribute.Value),
		})
	}
	return traits
}

// attributeValue normalizes a loose metadata value to its string form
func attributeValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}

// RelinkTransactions points previously unlinked transactions at freshly
// indexed NFTs
func (e *executor) RelinkTransactions(ctx context.Context, collectionID int64) (int, error) {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, domain.ErrCollectionNotFound
	}

	linked := 0
	for {
		transactions, err := e.store.ListUnlinkedTransactions(ctx, collection.ContractAddress, relinkBatchSize)
		if err != nil {
			return linked, err
		}
		if len(transactions) == 0 {
			return linked, nil
		}

		byToken := make(map[string][]int64)
		for _, transaction := range transactions {
			byToken[transaction.TokenID] = append(byToken[transaction.TokenID], transaction.ID)
		}

		resolved, err := e.resolveTokenBatch(ctx, collectionID, byToken)
		if err != nil {
			return linked, err
		}
		if len(resolved) == 0 {
			// Remaining rows reference tokens the collection does not have
			return linked, nil
		}

		for nftID, ids := range resolved {
			if err := e.store.LinkTransactionsToNFT(ctx, nftID, ids); err != nil {
				return linked, err
			}
			linked += len(ids)
		}

		if len(transactions) < relinkBatchSize {
			return linked, nil
		}
	}
}

// RelinkWalletHoldings points previously unlinked holdings at freshly
// indexed NFTs
func (e *executor) RelinkWalletHoldings(ctx context.Context, collectionID int64) (int, error) {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, domain.ErrCollectionNotFound
	}

	holdings, err := e.store.ListUnlinkedWalletNFTs(ctx, collection.ContractAddress)
	if err != nil {
		return 0, err
	}
	if len(holdings) == 0 {
		return 0, nil
	}

	byToken := make(map[string][]int64)
	for _, holding := range holdings {
		byToken[holding.TokenID] = append(byToken[holding.TokenID], holding.ID)
	}

	resolved, err := e.resolveTokenBatch(ctx, collectionID, byToken)
	if err != nil {
		return 0, err
	}

	linked := 0
	for nftID, ids := range resolved {
		if err := e.store.LinkWalletNFTsToNFT(ctx, nftID, ids); err != nil {
			return linked, err
		}
		linked += len(ids)
	}
	return linked, nil
}

// resolveTokenBatch maps row IDs grouped by token id onto NFT IDs
func (e *executor) resolveTokenBatch(ctx context.Context, collectionID int64, byToken map[string][]int64) (map[int64][]int64, error) {
	tokenIDs := make([]string, 0, len(byToken))
	for tokenID := range byToken {
		tokenIDs = append(tokenIDs, tokenID)
	}

	nfts, err := e.store.GetNFTsByTokenIDs(ctx, collectionID, tokenIDs)
	if err != nil {
		return nil, err
	}

	resolved := make(map[int64][]int64)
	for _, nft := range nfts {
		if ids, ok := byToken[nft.TokenID]; ok {
			resolved[nft.ID] = append(resolved[nft.ID], ids...)
		}
	}
	return resolved, nil
}

// ListReleasedCollectionIDs returns the IDs of collections included in
// scheduled refreshes
func (e *executor) ListReleasedCollectionIDs(ctx context.Context) ([]int64, error) {
	collections, err := e.store.ListReleasedCollections(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(collections))
	for _, collection := range collections {
		ids = append(ids, collection.ID)
	}
	return ids, nil
}

// RefreshCollectionMetrics fetches market statistics for one collection
func (e *executor) RefreshCollectionMetrics(ctx context.Context, collectionID int64) error {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return domain.ErrCollectionNotFound
	}
	if collection.NFTPortUnsupported {
		return nil
	}

	e.audit(ctx, domain.ProviderNFTPort, "contract_statistics")
	stats, err := e.nftport.GetContractStatistics(ctx, collection.ContractAddress)
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			logger.InfoCtx(ctx, "metrics provider does not know contract, flagging collection",
				zap.String("contract_address", collection.ContractAddress))
			return e.store.SetCollectionNFTPortUnsupported(ctx, collectionID)
		}
		return fmt.Errorf("failed to fetch contract statistics: %w", err)
	}

	metric := schema.CollectionMetric{
		CollectionID:       collectionID,
		FloorPrice:         stats.FloorPrice,
		OneDayAveragePrice: stats.OneDayAveragePrice,
		OneDaySales:        stats.OneDaySales,
		OneDayVolume:       stats.OneDayVolume,
		LastFetched:        e.clock.Now(),
	}

	// The statistics provider reports no floor for thinly traded
	// collections. Fall back to the marketplace floor in that case.
	if metric.FloorPrice == 0 {
		e.audit(ctx, domain.ProviderAlchemyNFT, "floor_price")
		floor, err := e.alchemy.GetFloorPrice(ctx, collection.ContractAddress)
		if err != nil {
			logger.WarnCtx(ctx, "failed to fetch marketplace floor price",
				zap.String("contract_address", collection.ContractAddress),
				zap.Error(err))
		} else if floor.OpenSea.FloorPrice > 0 {
			metric.FloorPrice = floor.OpenSea.FloorPrice
		} else {
			metric.FloorPrice = floor.LooksRare.FloorPrice
		}
	}

	// Current unique-owner count, kept alongside the historical series
	e.audit(ctx, domain.ProviderAlchemyNFT, "owners_for_collection")
	owners, err := e.alchemy.GetOwnersForCollection(ctx, collection.ContractAddress)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch collection owners",
			zap.String("contract_address", collection.ContractAddress),
			zap.Error(err))
	} else {
		metric.OwnerCount = int64(len(owners))
	}

	return e.store.UpsertCollectionMetric(ctx, &metric)
}

// RefreshCollectionHistories fetches the 30-day price and owners series
func (e *executor) RefreshCollectionHistories(ctx context.Context, collectionID int64) error {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return domain.ErrCollectionNotFound
	}

	e.audit(ctx, domain.ProviderMnemonic, "price_history")
	prices, err := e.mnemonic.GetPriceHistory(ctx, collection.ContractAddress)
	if err != nil {
		return fmt.Errorf("failed to fetch price history: %w", err)
	}
	if raw, err := e.json.Marshal(prices.DataPoints); err == nil {
		if err := e.store.SetCollectionPriceHistory(ctx, collectionID, datatypes.JSON(raw)); err != nil {
			return err
		}
	}

	e.audit(ctx, domain.ProviderMnemonic, "owners_count_history")
	owners, err := e.mnemonic.GetOwnersCountHistory(ctx, collection.ContractAddress)
	if err != nil {
		return fmt.Errorf("failed to fetch owners history: %w", err)
	}
	if raw, err := e.json.Marshal(owners.DataPoints); err == nil {
		if err := e.store.SetCollectionOwnersHistory(ctx, collectionID, datatypes.JSON(raw)); err != nil {
			return err
		}
	}

	return nil
}

// trendingEntry is one decorated row of a trending ranking
type trendingEntry struct {
	ContractAddress string  `json:"contract_address"`
	SalesVolume     string  `json:"sales_volume,omitempty"`
	SalesCount      string  `json:"sales_count,omitempty"`
	AvgPrice        string  `json:"avg_price,omitempty"`
	Name            string  `json:"name,omitempty"`
	Thumbnail       string  `json:"thumbnail,omitempty"`
	FloorPrice      float64 `json:"floor_price,omitempty"`
}

// RefreshTrendingCollections snapshots the three trending rankings
func (e *executor) RefreshTrendingCollections(ctx context.Context) error {
	snapshot := schema.TrendingCollection{}

	rankings := []struct {
		by     mnemonic.TrendingBy
		target *datatypes.JSON
	}{
		{mnemonic.TrendingByVolume, &snapshot.ByVolume},
		{mnemonic.TrendingBySales, &snapshot.BySales},
		{mnemonic.TrendingByPrice, &snapshot.ByPrice},
	}

	for _, ranking := range rankings {
		e.audit(ctx, domain.ProviderMnemonic, "trending_collections")
		resp, err := e.mnemonic.GetTrendingCollections(ctx, ranking.by, trendingLimit, 0)
		if err != nil {
			return fmt.Errorf("failed to fetch trending ranking %s: %w", ranking.by, err)
		}

		entries := make([]trendingEntry, 0, len(resp.Collections))
		for _, collection := range resp.Collections {
			entries = append(entries, e.decorateTrendingEntry(ctx, collection))
		}

		raw, err := e.json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal trending ranking: %w", err)
		}
		*ranking.target = datatypes.JSON(raw)
	}

	return e.store.CreateTrendingSnapshot(ctx, &snapshot)
}

// decorateTrendingEntry enriches a provider ranking row with locally
// indexed collection data when available
func (e *executor) decorateTrendingEntry(ctx context.Context, collection mnemonic.TrendingCollection) trendingEntry {
	contract := strings.ToLower(collection.ContractAddress)
	entry := trendingEntry{
		ContractAddress: contract,
		SalesVolume:     collection.SalesVolume,
		SalesCount:      collection.SalesCount,
		AvgPrice:        collection.AvgPrice,
	}

	local, err := e.store.GetCollectionByAddress(ctx, contract)
	if err != nil || local == nil {
		return entry
	}

	entry.Name = local.Name
	entry.Thumbnail = local.Thumbnail
	if metric, err := e.store.GetCollectionMetric(ctx, local.ID); err == nil && metric != nil {
		entry.FloorPrice = metric.FloorPrice
	}
	return entry
}

// RecordEthPrice stores the current ETH/USD spot price
func (e *executor) RecordEthPrice(ctx context.Context) error {
	e.audit(ctx, domain.ProviderCoinGecko, "simple_price")
	usd, err := e.coingecko.GetEthPriceUSD(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch eth price: %w", err)
	}

	return e.store.CreateEthPrice(ctx, &schema.EthPrice{
		Date: e.clock.Now(),
		USD:  usd,
	})
}

// SnapshotWalletPortfolios records a portfolio snapshot for every
// processed wallet
func (e *executor) SnapshotWalletPortfolios(ctx context.Context) (int, error) {
	wallets, err := e.store.ListProcessedWallets(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, wallet := range wallets {
		total, err := e.portfolioValue(ctx, wallet.ID)
		if err != nil {
			logger.WarnCtx(ctx, "skipping portfolio snapshot for wallet",
				zap.String("address", wallet.Address),
				zap.Error(err))
			continue
		}

		record := schema.WalletPortfolioRecord{
			WalletID:       wallet.ID,
			Timestamp:      e.clock.Now(),
			PortfolioValue: total,
		}
		if err := e.store.CreatePortfolioRecord(ctx, &record); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// BackfillCollectionTransfers advances the collection's transfer history
// from its block checkpoint
func (e *executor) BackfillCollectionTransfers(ctx context.Context, collectionID int64) (int, error) {
	collection, err := e.store.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, domain.ErrCollectionNotFound
	}

	var since time.Time
	checkpoint, err := e.store.GetEthBlock(ctx, collection.ContractAddress)
	if err != nil {
		return 0, err
	}
	if checkpoint != nil {
		since = checkpoint.Timestamp
	}

	e.audit(ctx, domain.ProviderMnemonic, "collection_transfers")
	transfers, err := pagination.Walk(ctx, e.clock, pagination.Options{PageSize: transfersPageSize},
		func(ctx context.Context, cursor string) (pagination.Page[mnemonic.Transfer], error) {
			offset := 0
			if cursor != "" {
				offset, _ = strconv.Atoi(cursor)
			}

			resp, err := e.mnemonic.GetCollectionTransfers(ctx, collection.ContractAddress, transfersPageSize, offset, since)
			if err != nil {
				return pagination.Page[mnemonic.Transfer]{}, err
			}

			return pagination.Page[mnemonic.Transfer]{
				Items:      resp.NFTTransfers,
				NextCursor: strconv.Itoa(offset + transfersPageSize),
			}, nil
		})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch collection transfers: %w", err)
	}
	if len(transfers) == 0 {
		return 0, nil
	}

	var lastBlock int64
	lastTimestamp := since
	transactions := make([]schema.Transaction, 0, len(transfers))
	for _, transfer := range transfers {
		transaction, ok := e.collectionTransaction(ctx, collectionID, collection.ContractAddress, transfer)
		if !ok {
			continue
		}
		transactions = append(transactions, transaction)

		if transaction.BlockNumber > lastBlock {
			lastBlock = transaction.BlockNumber
		}
		if transaction.TransactionDate.After(lastTimestamp) {
			lastTimestamp = transaction.TransactionDate
		}
	}

	if err := e.store.CreateTransactionsIgnore(ctx, transactions); err != nil {
		return 0, err
	}

	if err := e.store.UpsertEthBlock(ctx, collection.ContractAddress, lastBlock, lastTimestamp); err != nil {
		return 0, err
	}

	return len(transactions), nil
}

// collectionTransaction converts one provider transfer into a
// collection-only transaction row
func (e *executor) collectionTransaction(ctx context.Context, collectionID int64, contract string, transfer mnemonic.Transfer) (schema.Transaction, bool) {
	var transactionType domain.TransferType
	switch transfer.TransferType {
	case mnemonic.TransferTypeMint:
		transactionType = domain.TransferTypeMint
	case mnemonic.TransferTypeBurn:
		transactionType = domain.TransferTypeBurn
	default:
		transactionType = domain.TransferTypeTransfer
	}

	quantity := int64(1)
	if q, err := strconv.ParseInt(transfer.Quantity, 10, 64); err == nil && q > 0 {
		quantity = q
	}

	blockNumber, _ := strconv.ParseInt(transfer.BlockchainEvent.BlockNumber, 10, 64)

	transactionDate, err := e.clock.Parse(time.RFC3339, transfer.BlockchainEvent.BlockTimestamp)
	if err != nil {
		logger.WarnCtx(ctx, "skipping transfer with undecodable timestamp",
			zap.String("transaction_hash", transfer.BlockchainEvent.TxHash),
			zap.Error(err))
		return schema.Transaction{}, false
	}

	var priceETH, priceUSD float64
	if transfer.RecipientPaid != nil {
		priceETH, _ = strconv.ParseFloat(transfer.RecipientPaid.TotalEth, 64)
		priceUSD, _ = strconv.ParseFloat(transfer.RecipientPaid.TotalUsd, 64)
	}

	raw, err := e.json.Marshal(transfer)
	if err != nil {
		return schema.Transaction{}, false
	}

	return schema.Transaction{
		NFTID:           e.resolveNFTByCollection(ctx, collectionID, transfer.TokenID),
		TransactionType: string(transactionType),
		TransferFrom:    strings.ToLower(transfer.Sender.Address),
		TransferTo:      strings.ToLower(transfer.Recipient.Address),
		ContractAddress: contract,
		TokenID:         transfer.TokenID,
		Quantity:        quantity,
		TransactionHash: transfer.BlockchainEvent.TxHash,
		BlockNumber:     blockNumber,
		TransactionDate: transactionDate,
		Raw:             datatypes.JSON(raw),
		PriceETH:        priceETH,
		PriceUSD:        priceUSD,
		CollectionOnly:  true,
	}, true
}

// resolveNFT links a (contract, token) pair to a locally indexed NFT
func (e *executor) resolveNFT(ctx context.Context, contract, tokenID string) *int64 {
	collection, err := e.store.GetCollectionByAddress(ctx, contract)
	if err != nil || collection == nil {
		return nil
	}
	return e.resolveNFTByCollection(ctx, collection.ID, tokenID)
}

// resolveNFTByCollection links a token id to a locally indexed NFT
func (e *executor) resolveNFTByCollection(ctx context.Context, collectionID int64, tokenID string) *int64 {
	nft, err := e.store.GetNFTByToken(ctx, collectionID, tokenID)
	if err != nil || nft == nil {
		return nil
	}
	return &nft.ID
}
