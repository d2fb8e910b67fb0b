package schema

import (
	"time"

	"gorm.io/datatypes"
)

// WalletNFT represents the wallet_nfts table - a wallet's current holdings.
// Rows are deleted and recreated during onboarding, and flipped individually
// by webhook transfer events. NFTID stays null until the collection is
// indexed locally.
type WalletNFT struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	WalletID int64  `gorm:"column:wallet_id;not null;index:idx_wallet_nfts_key,unique,priority:1"`
	NFTID    *int64 `gorm:"column:nft_id;index"`
	// NFTRawData holds at least {contract_address, token_id} from the provider
	NFTRawData datatypes.JSON `gorm:"column:nft_raw_data;type:jsonb"`
	// ContractAddress is the lowercased contract, denormalized for relinking
	ContractAddress string `gorm:"column:contract_address;type:text;index;index:idx_wallet_nfts_key,unique,priority:2"`
	// TokenID is the decimal token number, denormalized for relinking
	TokenID   string    `gorm:"column:token_id;type:text;index:idx_wallet_nfts_key,unique,priority:3"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the WalletNFT model
func (WalletNFT) TableName() string {
	return "wallet_nfts"
}
