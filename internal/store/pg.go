package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
)

// Bulk write chunk sizes. Small enough to bound lock and memory footprint
// per statement.
const (
	nftBatchSize         = 100
	attributeBatchSize   = 50
	transactionBatchSize = 100
	scoreUpdateBatchSize = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes a batch size for bulk inserts that stays
// below PostgreSQL's extended protocol limit of 65535 parameters per query.
// Each record consumes one parameter per field, and ON CONFLICT clauses plus
// GORM bookkeeping add batch-level overhead, so a fixed headroom is reserved.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// batchSize clamps a preferred chunk size to the parameter-safe limit
func batchSize(preferred, totalRecords, fieldsPerRecord int) int {
	return min(preferred, calculateSafeBatchSize(totalRecords, fieldsPerRecord))
}

// GetCollectionByAddress retrieves a collection by its lowercased contract address
func (s *pgStore) GetCollectionByAddress(ctx context.Context, contractAddress string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("contract_address = ?", contractAddress).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionByID retrieves a collection by its internal ID
func (s *pgStore) GetCollectionByID(ctx context.Context, id int64) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// CreateCollection persists a new collection
func (s *pgStore) CreateCollection(ctx context.Context, collection *schema.Collection) error {
	if err := s.db.WithContext(ctx).Create(collection).Error; err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// ListReleasedCollections returns live collections included in scheduled refreshes
func (s *pgStore) ListReleasedCollections(ctx context.Context) ([]*schema.Collection, error) {
	var collections []*schema.Collection
	err := s.db.WithContext(ctx).
		Where("released = ? AND dead = ?", true, false).
		Order("id").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list released collections: %w", err)
	}
	return collections, nil
}

// SetCollectionNFTPortUnsupported permanently flags a collection as unknown to the metrics provider
func (s *pgStore) SetCollectionNFTPortUnsupported(ctx context.Context, collectionID int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("id = ?", collectionID).
		Update("nftport_unsupported", true).Error
	if err != nil {
		return fmt.Errorf("failed to flag collection as unsupported: %w", err)
	}
	return nil
}

// UpdateCollectionSupply records the declared total supply
func (s *pgStore) UpdateCollectionSupply(ctx context.Context, collectionID int64, supply int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Collection{}).
		Where("id = ?", collectionID).
		Update("supply", supply).Error
	if err != nil {
		return fmt.Errorf("failed to update collection supply: %w", err)
	}
	return nil
}

// ReplaceCollectionNFTs deletes a collection's NFTs and bulk-creates the given set
func (s *pgStore) ReplaceCollectionNFTs(ctx context.Context, collectionID int64, nfts []schema.NFT) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).Delete(&schema.NFT{}).Error; err != nil {
			return fmt.Errorf("failed to delete collection NFTs: %w", err)
		}
		if len(nfts) == 0 {
			return nil
		}
		size := batchSize(nftBatchSize, len(nfts), 10)
		if err := tx.CreateInBatches(nfts, size).Error; err != nil {
			return fmt.Errorf("failed to create collection NFTs: %w", err)
		}
		return nil
	})
}

// UpdateNFTScores writes rarity scores and ranks in chunks
func (s *pgStore) UpdateNFTScores(ctx context.Context, collectionID int64, scores []NFTScore) error {
	for start := 0; start < len(scores); start += scoreUpdateBatchSize {
		end := min(start+scoreUpdateBatchSize, len(scores))
		chunk := scores[start:end]

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, score := range chunk {
				err := tx.Model(&schema.NFT{}).
					Where("collection_id = ? AND token_id = ?", collectionID, score.TokenID).
					Updates(map[string]interface{}{
						"rarity_score": score.RarityScore,
						"rank":         score.Rank,
					}).Error
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to update NFT scores: %w", err)
		}
	}
	return nil
}

// GetCollectionNFTs returns a page of a collection's NFTs ordered by rank
func (s *pgStore) GetCollectionNFTs(ctx context.Context, collectionID int64, limit, offset int) ([]*schema.NFT, error) {
	var nfts []*schema.NFT
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("rank").
		Limit(limit).
		Offset(offset).
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collection NFTs: %w", err)
	}
	return nfts, nil
}

// GetNFTByToken resolves an NFT by its collection and decimal token id
func (s *pgStore) GetNFTByToken(ctx context.Context, collectionID int64, tokenID string) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND token_id = ?", collectionID, tokenID).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get NFT: %w", err)
	}
	return &nft, nil
}

// GetNFTsByTokenIDs resolves a batch of NFTs by decimal token id
func (s *pgStore) GetNFTsByTokenIDs(ctx context.Context, collectionID int64, tokenIDs []string) ([]*schema.NFT, error) {
	if len(tokenIDs) == 0 {
		return []*schema.NFT{}, nil
	}

	var nfts []*schema.NFT
	err := s.db.WithContext(ctx).
		Where("collection_id = ? AND token_id IN ?", collectionID, tokenIDs).
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get NFTs by token IDs: %w", err)
	}
	return nfts, nil
}

// ReplaceCollectionAttributes deletes a collection's attributes and bulk-creates the given set
func (s *pgStore) ReplaceCollectionAttributes(ctx context.Context, collectionID int64, attributes []schema.CollectionAttribute) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", collectionID).Delete(&schema.CollectionAttribute{}).Error; err != nil {
			return fmt.Errorf("failed to delete collection attributes: %w", err)
		}
		if len(attributes) == 0 {
			return nil
		}
		size := batchSize(attributeBatchSize, len(attributes), 6)
		if err := tx.CreateInBatches(attributes, size).Error; err != nil {
			return fmt.Errorf("failed to create collection attributes: %w", err)
		}
		return nil
	})
}

// GetCollectionAttributes returns all attributes of a collection
func (s *pgStore) GetCollectionAttributes(ctx context.Context, collectionID int64) ([]*schema.CollectionAttribute, error) {
	var attributes []*schema.CollectionAttribute
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("name, value").
		Find(&attributes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collection attributes: %w", err)
	}
	return attributes, nil
}

// GetCollectionMetric retrieves a collection's metrics row
func (s *pgStore) GetCollectionMetric(ctx context.Context, collectionID int64) (*schema.CollectionMetric, error) {
	var metric schema.CollectionMetric
	err := s.db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection metric: %w", err)
	}
	return &metric, nil
}

// UpsertCollectionMetric creates or updates a collection's metrics row.
// History series are written separately and left untouched here.
func (s *pgStore) UpsertCollectionMetric(ctx context.Context, metric *schema.CollectionMetric) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "collection_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"floor_price",
			"one_day_average_price",
			"one_day_sales",
			"one_day_volume",
			"owner_count",
			"royalty_fee",
			"last_fetched",
			"updated_at",
		}),
	}).Create(metric).Error
	if err != nil {
		return fmt.Errorf("failed to upsert collection metric: %w", err)
	}
	return nil
}

// SetCollectionPriceHistory stores the daily price series
func (s *pgStore) SetCollectionPriceHistory(ctx context.Context, collectionID int64, history datatypes.JSON) error {
	return s.setMetricHistory(ctx, collectionID, "price_history", history)
}

// SetCollectionOwnersHistory stores the daily owners series
func (s *pgStore) SetCollectionOwnersHistory(ctx context.Context, collectionID int64, history datatypes.JSON) error {
	return s.setMetricHistory(ctx, collectionID, "owners_history", history)
}

func (s *pgStore) setMetricHistory(ctx context.Context, collectionID int64, column string, history datatypes.JSON) error {
	res := s.db.WithContext(ctx).
		Model(&schema.CollectionMetric{}).
		Where("collection_id = ?", collectionID).
		Updates(map[string]interface{}{
			column:       history,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to set %s: %w", column, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// No metrics row yet for this collection
	metric := schema.CollectionMetric{CollectionID: collectionID, UpdatedAt: time.Now()}
	if column == "price_history" {
		metric.PriceHistory = history
	} else {
		metric.OwnersHistory = history
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&metric).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", column, err)
	}
	return nil
}

// ListUnlinkedTransactions returns wallet transactions for a contract with no resolved NFT
func (s *pgStore) ListUnlinkedTransactions(ctx context.Context, contractAddress string, limit int) ([]*schema.Transaction, error) {
	var transactions []*schema.Transaction
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND nft_id IS NULL AND collection_only = ?", contractAddress, false).
		Order("id").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unlinked transactions: %w", err)
	}
	return transactions, nil
}

// LinkTransactionsToNFT points a batch of transactions at a freshly indexed NFT
func (s *pgStore) LinkTransactionsToNFT(ctx context.Context, nftID int64, transactionIDs []int64) error {
	if len(transactionIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("id IN ?", transactionIDs).
		Update("nft_id", nftID).Error
	if err != nil {
		return fmt.Errorf("failed to link transactions: %w", err)
	}
	return nil
}

// ListUnlinkedWalletNFTs returns holdings for a contract with no resolved NFT
func (s *pgStore) ListUnlinkedWalletNFTs(ctx context.Context, contractAddress string) ([]*schema.WalletNFT, error) {
	var nfts []*schema.WalletNFT
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND nft_id IS NULL", contractAddress).
		Order("id").
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unlinked wallet NFTs: %w", err)
	}
	return nfts, nil
}

// LinkWalletNFTsToNFT points a batch of holdings at a freshly indexed NFT
func (s *pgStore) LinkWalletNFTsToNFT(ctx context.Context, nftID int64, walletNFTIDs []int64) error {
	if len(walletNFTIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&schema.WalletNFT{}).
		Where("id IN ?", walletNFTIDs).
		Update("nft_id", nftID).Error
	if err != nil {
		return fmt.Errorf("failed to link wallet NFTs: %w", err)
	}
	return nil
}

// GetWalletByAddress retrieves a wallet by its lowercased address
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetOrCreateWallet retrieves a wallet, creating an unprocessed row if absent
func (s *pgStore) GetOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).
		Where(schema.Wallet{Address: address}).
		Attrs(schema.Wallet{Active: true}).
		FirstOrCreate(&wallet).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create wallet: %w", err)
	}
	return &wallet, nil
}

// SetWalletRawNFTData stores the raw ownership payload from the provider
func (s *pgStore) SetWalletRawNFTData(ctx context.Context, walletID int64, raw datatypes.JSON) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"nfts_raw_data": raw,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set wallet raw NFT data: %w", err)
	}
	return nil
}

// SetWalletProcessed marks onboarding complete and records resolved ENS names
func (s *pgStore) SetWalletProcessed(ctx context.Context, walletID int64, ensDomain string, ensDomains datatypes.JSON) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"processed":   true,
			"ens_domain":  ensDomain,
			"ens_domains": ensDomains,
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark wallet processed: %w", err)
	}
	return nil
}

// SetWalletMembership flips the gating-collection membership flag
func (s *pgStore) SetWalletMembership(ctx context.Context, walletID int64, isMember bool) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"is_member":  isMember,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set wallet membership: %w", err)
	}
	return nil
}

// ListProcessedWallets returns all fully onboarded wallets
func (s *pgStore) ListProcessedWallets(ctx context.Context) ([]*schema.Wallet, error) {
	var wallets []*schema.Wallet
	err := s.db.WithContext(ctx).
		Where("processed = ? AND active = ?", true, true).
		Order("id").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list processed wallets: %w", err)
	}
	return wallets, nil
}

// ReplaceWalletNFTs deletes a wallet's holdings and bulk-creates the given set
func (s *pgStore) ReplaceWalletNFTs(ctx context.Context, walletID int64, nfts []schema.WalletNFT) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", walletID).Delete(&schema.WalletNFT{}).Error; err != nil {
			return fmt.Errorf("failed to delete wallet NFTs: %w", err)
		}
		if len(nfts) == 0 {
			return nil
		}
		size := batchSize(nftBatchSize, len(nfts), 7)
		if err := tx.CreateInBatches(nfts, size).Error; err != nil {
			return fmt.Errorf("failed to create wallet NFTs: %w", err)
		}
		return nil
	})
}

// CreateWalletNFTIgnore creates a holding, ignoring duplicates
func (s *pgStore) CreateWalletNFTIgnore(ctx context.Context, nft *schema.WalletNFT) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_id"}, {Name: "contract_address"}, {Name: "token_id"}},
		DoNothing: true,
	}).Create(nft).Error
	if err != nil {
		return fmt.Errorf("failed to create wallet NFT: %w", err)
	}
	return nil
}

// DeleteWalletNFT removes a holding by its natural key
func (s *pgStore) DeleteWalletNFT(ctx context.Context, walletID int64, contractAddress, tokenID string) error {
	err := s.db.WithContext(ctx).
		Where("wallet_id = ? AND contract_address = ? AND token_id = ?", walletID, contractAddress, tokenID).
		Delete(&schema.WalletNFT{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete wallet NFT: %w", err)
	}
	return nil
}

// GetWalletNFTs returns all holdings of a wallet
func (s *pgStore) GetWalletNFTs(ctx context.Context, walletID int64) ([]*schema.WalletNFT, error) {
	var nfts []*schema.WalletNFT
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("id").
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet NFTs: %w", err)
	}
	return nfts, nil
}

// CreateTransactionIgnore creates a transaction, ignoring (wallet, hash) duplicates
func (s *pgStore) CreateTransactionIgnore(ctx context.Context, transaction *schema.Transaction) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_id"}, {Name: "transaction_hash"}},
		DoNothing: true,
	}).Create(transaction).Error
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateTransactionsIgnore bulk-creates transactions, ignoring duplicates
func (s *pgStore) CreateTransactionsIgnore(ctx context.Context, transactions []schema.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	size := batchSize(transactionBatchSize, len(transactions), 17)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_id"}, {Name: "transaction_hash"}},
		DoNothing: true,
	}).CreateInBatches(transactions, size).Error
	if err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

// GetOrCreateTrackedWallet retrieves a tracked wallet by address, creating it if absent
func (s *pgStore) GetOrCreateTrackedWallet(ctx context.Context, address string, walletID *int64) (*schema.TrackedWallet, error) {
	var tracked schema.TrackedWallet
	err := s.db.WithContext(ctx).
		Where(schema.TrackedWallet{Address: address}).
		Attrs(schema.TrackedWallet{WalletID: walletID}).
		FirstOrCreate(&tracked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create tracked wallet: %w", err)
	}

	// Backfill the wallet link on rows created before the wallet existed
	if tracked.WalletID == nil && walletID != nil {
		err = s.db.WithContext(ctx).
			Model(&schema.TrackedWallet{}).
			Where("id = ?", tracked.ID).
			Update("wallet_id", *walletID).Error
		if err != nil {
			return nil, fmt.Errorf("failed to link tracked wallet: %w", err)
		}
		tracked.WalletID = walletID
	}
	return &tracked, nil
}

// SetTrackedWalletThumbnail stores the derived thumbnail for a tracked wallet
func (s *pgStore) SetTrackedWalletThumbnail(ctx context.Context, address string, thumbnail string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.TrackedWallet{}).
		Where("address = ?", address).
		Update("thumbnail", thumbnail).Error
	if err != nil {
		return fmt.Errorf("failed to set tracked wallet thumbnail: %w", err)
	}
	return nil
}

// LinkUserTrackedWallet links a user identity to a tracked wallet, ignoring duplicates
func (s *pgStore) LinkUserTrackedWallet(ctx context.Context, userID string, trackedWalletID int64, customName string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tracked_wallet_id"}},
		DoNothing: true,
	}).Create(&schema.UserTrackedWallet{
		UserID:          userID,
		TrackedWalletID: trackedWalletID,
		CustomName:      customName,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to link user tracked wallet: %w", err)
	}
	return nil
}

// GetEthBlock retrieves the backfill checkpoint for a contract
func (s *pgStore) GetEthBlock(ctx context.Context, contractAddress string) (*schema.EthBlock, error) {
	var block schema.EthBlock
	err := s.db.WithContext(ctx).Where("contract_address = ?", contractAddress).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get eth block: %w", err)
	}
	return &block, nil
}

// UpsertEthBlock advances the backfill checkpoint for a contract
func (s *pgStore) UpsertEthBlock(ctx context.Context, contractAddress string, lastBlock int64, timestamp time.Time) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_block", "timestamp"}),
	}).Create(&schema.EthBlock{
		ContractAddress: contractAddress,
		LastBlock:       lastBlock,
		Timestamp:       timestamp,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to upsert eth block: %w", err)
	}
	return nil
}

// CreateEthPrice records an ETH/USD spot price
func (s *pgStore) CreateEthPrice(ctx context.Context, price *schema.EthPrice) error {
	if err := s.db.WithContext(ctx).Create(price).Error; err != nil {
		return fmt.Errorf("failed to create eth price: %w", err)
	}
	return nil
}

// GetEthPriceAt returns the most recent price dated at or before the given time
func (s *pgStore) GetEthPriceAt(ctx context.Context, at time.Time) (*schema.EthPrice, error) {
	var price schema.EthPrice
	err := s.db.WithContext(ctx).
		Where("date <= ?", at).
		Order("date DESC").
		First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get eth price: %w", err)
	}
	return &price, nil
}

// CreateTrendingSnapshot inserts a new trending rankings snapshot
func (s *pgStore) CreateTrendingSnapshot(ctx context.Context, snapshot *schema.TrendingCollection) error {
	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create trending snapshot: %w", err)
	}
	return nil
}

// GetLatestTrendingSnapshot returns the newest trending snapshot
func (s *pgStore) GetLatestTrendingSnapshot(ctx context.Context) (*schema.TrendingCollection, error) {
	var snapshot schema.TrendingCollection
	err := s.db.WithContext(ctx).Order("created_at DESC").First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trending snapshot: %w", err)
	}
	return &snapshot, nil
}

// CreatePortfolioRecord inserts a portfolio value snapshot for a wallet
func (s *pgStore) CreatePortfolioRecord(ctx context.Context, record *schema.WalletPortfolioRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create portfolio record: %w", err)
	}
	return nil
}

// RecordAPICall writes a best-effort audit row for an outbound provider call
func (s *pgStore) RecordAPICall(ctx context.Context, client, operation string) error {
	err := s.db.WithContext(ctx).Create(&schema.APICallRecord{
		Client:    client,
		Operation: operation,
		Timestamp: time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to record api call: %w", err)
	}
	return nil
}
