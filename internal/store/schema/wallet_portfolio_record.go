package schema

import (
	"time"
)

// WalletPortfolioRecord represents the wallet_portfolio_records table -
// daily snapshots of a wallet's estimated portfolio value in ETH.
type WalletPortfolioRecord struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WalletID       int64     `gorm:"column:wallet_id;not null;index"`
	Timestamp      time.Time `gorm:"column:timestamp;not null;default:now()"`
	PortfolioValue float64   `gorm:"column:portfolio_value;not null;default:0"`
}

// TableName specifies the table name for the WalletPortfolioRecord model
func (WalletPortfolioRecord) TableName() string {
	return "wallet_portfolio_records"
}
