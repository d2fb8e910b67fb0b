package schema

import (
	"time"
)

// EthBlock represents the eth_blocks table - per-contract checkpoint for
// the resumable collection transfer backfill.
type EthBlock struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ContractAddress string    `gorm:"column:contract_address;not null;uniqueIndex;type:text"`
	LastBlock       int64     `gorm:"column:last_block;not null;default:0"`
	Timestamp       time.Time `gorm:"column:timestamp;not null;default:now()"`
}

// TableName specifies the table name for the EthBlock model
func (EthBlock) TableName() string {
	return "eth_blocks"
}

// EthPrice represents the eth_prices table - periodic ETH/USD spot prices.
// Webhook ingestion converts transfer values to fiat using the most recent
// row dated at or before the transfer.
type EthPrice struct {
	ID   int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Date time.Time `gorm:"column:date;not null;index"`
	USD  float64   `gorm:"column:usd;not null"`
}

// TableName specifies the table name for the EthPrice model
func (EthPrice) TableName() string {
	return "eth_prices"
}
