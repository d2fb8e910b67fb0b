package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
)

// NFTScore carries one computed rarity result for a chunked score update.
type NFTScore struct {
	TokenID     string
	RarityScore float64
	Rank        int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Collections

	// GetCollectionByAddress retrieves a collection by its lowercased contract address
	GetCollectionByAddress(ctx context.Context, contractAddress string) (*schema.Collection, error)
	// GetCollectionByID retrieves a collection by its internal ID
	GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error)
	// CreateCollection persists a new collection
	CreateCollection(ctx context.Context, collection *schema.Collection) error
	// ListReleasedCollections returns live collections included in scheduled refreshes
	ListReleasedCollections(ctx context.Context) ([]*schema.Collection, error)
	// SetCollectionNFTPortUnsupported permanently flags a collection as unknown to the metrics provider
	SetCollectionNFTPortUnsupported(ctx context.Context, collectionID int64) error
	// UpdateCollectionSupply records the declared total supply
	UpdateCollectionSupply(ctx context.Context, collectionID int64, supply int64) error

	// NFTs

	// ReplaceCollectionNFTs deletes a collection's NFTs and bulk-creates the given set
	ReplaceCollectionNFTs(ctx context.Context, collectionID int64, nfts []schema.NFT) error
	// UpdateNFTScores writes rarity scores and ranks in chunks
	UpdateNFTScores(ctx context.Context, collectionID int64, scores []NFTScore) error
	// GetCollectionNFTs returns a page of a collection's NFTs ordered by rank
	GetCollectionNFTs(ctx context.Context, collectionID int64, limit, offset int) ([]*schema.NFT, error)
	// GetNFTByToken resolves an NFT by its collection and decimal token id
	GetNFTByToken(ctx context.Context, collectionID int64, tokenID string) (*schema.NFT, error)
	// GetNFTsByTokenIDs resolves a batch of NFTs by decimal token id
	GetNFTsByTokenIDs(ctx context.Context, collectionID int64, tokenIDs []string) ([]*schema.NFT, error)

	// Attributes

	// ReplaceCollectionAttributes deletes a collection's attributes and bulk-creates the given set
	ReplaceCollectionAttributes(ctx context.Context, collectionID int64, attributes []schema.CollectionAttribute) error
	// GetCollectionAttributes returns all attributes of a collection
	GetCollectionAttributes(ctx context.Context, collectionID int64) ([]*schema.CollectionAttribute, error)

	// Metrics

	// GetCollectionMetric retrieves a collection's metrics row
	GetCollectionMetric(ctx context.Context, collectionID int64) (*schema.CollectionMetric, error)
	// UpsertCollectionMetric creates or updates a collection's metrics row
	UpsertCollectionMetric(ctx context.Context, metric *schema.CollectionMetric) error
	// SetCollectionPriceHistory stores the daily price series
	SetCollectionPriceHistory(ctx context.Context, collectionID int64, history datatypes.JSON) error
	// SetCollectionOwnersHistory stores the daily owners series
	SetCollectionOwnersHistory(ctx context.Context, collectionID int64, history datatypes.JSON) error

	// Relinking

	// ListUnlinkedTransactions returns wallet transactions for a contract with no resolved NFT
	ListUnlinkedTransactions(ctx context.Context, contractAddress string, limit int) ([]*schema.Transaction, error)
	// LinkTransactionsToNFT points a batch of transactions at a freshly indexed NFT
	LinkTransactionsToNFT(ctx context.Context, nftID int64, transactionIDs []int64) error
	// ListUnlinkedWalletNFTs returns holdings for a contract with no resolved NFT
	ListUnlinkedWalletNFTs(ctx context.Context, contractAddress string) ([]*schema.WalletNFT, error)
	// LinkWalletNFTsToNFT points a batch of holdings at a freshly indexed NFT
	LinkWalletNFTsToNFT(ctx context.Context, nftID int64, walletNFTIDs []int64) error

	// Wallets

	// GetWalletByAddress retrieves a wallet by its lowercased address
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// GetOrCreateWallet retrieves a wallet, creating an unprocessed row if absent
	GetOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error)
	// SetWalletRawNFTData stores the raw ownership payload from the provider
	SetWalletRawNFTData(ctx context.Context, walletID int64, raw datatypes.JSON) error
	// SetWalletProcessed marks onboarding complete and records resolved ENS names
	SetWalletProcessed(ctx context.Context, walletID int64, ensDomain string, ensDomains datatypes.JSON) error
	// SetWalletMembership flips the gating-collection membership flag
	SetWalletMembership(ctx context.Context, walletID int64, isMember bool) error
	// ListProcessedWallets returns all fully onboarded wallets
	ListProcessedWallets(ctx context.Context) ([]*schema.Wallet, error)

	// Wallet holdings

	// ReplaceWalletNFTs deletes a wallet's holdings and bulk-creates the given set
	ReplaceWalletNFTs(ctx context.Context, walletID int64, nfts []schema.WalletNFT) error
	// CreateWalletNFTIgnore creates a holding, ignoring duplicates
	CreateWalletNFTIgnore(ctx context.Context, nft *schema.WalletNFT) error
	// DeleteWalletNFT removes a holding by its natural key
	DeleteWalletNFT(ctx context.Context, walletID int64, contractAddress, tokenID string) error
	// GetWalletNFTs returns all holdings of a wallet
	GetWalletNFTs(ctx context.Context, walletID int64) ([]*schema.WalletNFT, error)

	// Transactions

	// CreateTransactionIgnore creates a transaction, ignoring (wallet, hash) duplicates
	CreateTransactionIgnore(ctx context.Context, transaction *schema.Transaction) error
	// CreateTransactionsIgnore bulk-creates transactions, ignoring duplicates
	CreateTransactionsIgnore(ctx context.Context, transactions []schema.Transaction) error

	// Tracked wallets

	// GetOrCreateTrackedWallet retrieves a tracked wallet by address, creating it if absent
	GetOrCreateTrackedWallet(ctx context.Context, address string, walletID *int64) (*schema.TrackedWallet, error)
	// SetTrackedWalletThumbnail stores the derived thumbnail for a tracked wallet
	SetTrackedWalletThumbnail(ctx context.Context, address string, thumbnail string) error
	// LinkUserTrackedWallet links a user identity to a tracked wallet, ignoring duplicates
	LinkUserTrackedWallet(ctx context.Context, userID string, trackedWalletID int64, customName string) error

	// Blocks and prices

	// GetEthBlock retrieves the backfill checkpoint for a contract
	GetEthBlock(ctx context.Context, contractAddress string) (*schema.EthBlock, error)
	// UpsertEthBlock advances the backfill checkpoint for a contract
	UpsertEthBlock(ctx context.Context, contractAddress string, lastBlock int64, timestamp time.Time) error
	// CreateEthPrice records an ETH/USD spot price
	CreateEthPrice(ctx context.Context, price *schema.EthPrice) error
	// GetEthPriceAt returns the most recent price dated at or before the given time
	GetEthPriceAt(ctx context.Context, at time.Time) (*schema.EthPrice, error)

	// Trending

	// CreateTrendingSnapshot inserts a new trending rankings snapshot
	CreateTrendingSnapshot(ctx context.Context, snapshot *schema.TrendingCollection) error
	// GetLatestTrendingSnapshot returns the newest trending snapshot
	GetLatestTrendingSnapshot(ctx context.Context) (*schema.TrendingCollection, error)

	// Portfolio

	// CreatePortfolioRecord inserts a portfolio value snapshot for a wallet
	CreatePortfolioRecord(ctx context.Context, record *schema.WalletPortfolioRecord) error

	// Audit

	// RecordAPICall writes a best-effort audit row for an outbound provider call
	RecordAPICall(ctx context.Context, client, operation string) error
}
