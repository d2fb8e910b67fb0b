package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the transactions table - transfer history rows.
// Wallet-scoped rows are keyed (wallet_id, transaction_hash) so webhook
// redelivery and history refetches stay idempotent. Collection-only rows
// (wallet_id null) come from the transfer backfill.
type Transaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletID references the owning wallet, null for collection-only rows
	WalletID *int64 `gorm:"column:wallet_id;index:idx_transactions_wallet_hash,unique,priority:1"`
	// NFTID references the locally indexed NFT, null until relinked
	NFTID *int64 `gorm:"column:nft_id;index"`
	// TransactionType is mint, burn, transfer, sale or buy
	TransactionType string `gorm:"column:transaction_type;not null;type:text"`
	// TransferFrom is the lowercased sender address
	TransferFrom string `gorm:"column:transfer_from;type:text"`
	// TransferTo is the lowercased recipient address
	TransferTo string `gorm:"column:transfer_to;type:text"`
	// ContractAddress is the lowercased token contract
	ContractAddress string `gorm:"column:contract_address;not null;type:text;index"`
	// TokenID is the decimal token number
	TokenID string `gorm:"column:token_id;type:text"`
	// Quantity is the transferred amount, 1 for erc721
	Quantity int64 `gorm:"column:quantity;not null;default:1"`
	// TransactionHash is the on-chain transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text;index:idx_transactions_wallet_hash,unique,priority:2"`
	// BlockHash is the containing block hash
	BlockHash string `gorm:"column:block_hash;type:text"`
	// BlockNumber is the containing block number
	BlockNumber int64 `gorm:"column:block_number;not null;default:0"`
	// TransactionDate is the block timestamp
	TransactionDate time.Time `gorm:"column:transaction_date"`
	// Raw is the provider payload for this transfer
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// PriceETH is the transfer value in ETH
	PriceETH float64 `gorm:"column:price_eth;not null;default:0"`
	// PriceUSD is the transfer value in USD at the transfer date
	PriceUSD float64 `gorm:"column:price_usd;not null;default:0"`
	// CollectionOnly marks backfilled rows not tied to a wallet
	CollectionOnly bool `gorm:"column:collection_only;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
