package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Wallet represents the wallets table - one row per onboarded wallet address
type Wallet struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the lowercased wallet address, unique per wallet
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// NFTsRawData is the raw ownership payload from the last owned-token fetch
	NFTsRawData datatypes.JSON `gorm:"column:nfts_raw_data;type:jsonb"`
	// IsMember indicates the wallet holds a token of the gating collection
	IsMember bool `gorm:"column:is_member;not null;default:false"`
	// IsBeta grants access to beta features
	IsBeta bool `gorm:"column:is_beta;not null;default:false"`
	// Active indicates the wallet is still linked to a live account
	Active bool `gorm:"column:active;not null;default:true"`
	// Processed indicates the onboarding chain completed; false means partially onboarded
	Processed bool `gorm:"column:processed;not null;default:false"`
	// DisplayName is a user-chosen label
	DisplayName string `gorm:"column:display_name;type:text"`
	// Thumbnail is the wallet avatar URL
	Thumbnail string `gorm:"column:thumbnail;type:text"`
	// ENSDomain is the primary resolved ENS name
	ENSDomain string `gorm:"column:ens_domain;type:text"`
	// ENSDomains is the full list of resolved ENS names
	ENSDomains datatypes.JSON `gorm:"column:ens_domains;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last update
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	WalletNFTs       []WalletNFT             `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
	Transactions     []Transaction           `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
	PortfolioRecords []WalletPortfolioRecord `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
