package schema

import (
	"time"
)

// TrackedWallet represents the tracked_wallets table - a wallet watched by
// users without being tied to an account. The wallet reference is nullable
// and survives wallet deletion.
type TrackedWallet struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Address  string `gorm:"column:address;not null;uniqueIndex;type:text"`
	WalletID *int64 `gorm:"column:wallet_id;index"`
	// Thumbnail is derived from the wallet's most valuable holding
	Thumbnail string    `gorm:"column:thumbnail;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	Wallet *Wallet `gorm:"foreignKey:WalletID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for the TrackedWallet model
func (TrackedWallet) TableName() string {
	return "tracked_wallets"
}

// UserTrackedWallet represents the user_tracked_wallets table - the
// many-to-many link between user identities and tracked wallets.
type UserTrackedWallet struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID          string `gorm:"column:user_id;not null;type:text;index:idx_user_tracked_wallets,unique,priority:1"`
	TrackedWalletID int64  `gorm:"column:tracked_wallet_id;not null;index:idx_user_tracked_wallets,unique,priority:2"`
	// CustomName is the user's label for this wallet
	CustomName string    `gorm:"column:custom_name;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now()"`

	TrackedWallet *TrackedWallet `gorm:"foreignKey:TrackedWalletID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserTrackedWallet model
func (UserTrackedWallet) TableName() string {
	return "user_tracked_wallets"
}
