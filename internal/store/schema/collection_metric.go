package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionMetric represents the collection_metrics table - market
// statistics for a collection, refreshed on a schedule. One row per
// collection.
type CollectionMetric struct {
	ID           int64 `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID int64 `gorm:"column:collection_id;not null;uniqueIndex"`
	// FloorPrice is the lowest listed price in ETH
	FloorPrice float64 `gorm:"column:floor_price;not null;default:0"`
	// OneDayAveragePrice is the 24h average sale price in ETH
	OneDayAveragePrice float64 `gorm:"column:one_day_average_price;not null;default:0"`
	// OneDaySales is the 24h sale count
	OneDaySales int64 `gorm:"column:one_day_sales;not null;default:0"`
	// OneDayVolume is the 24h sale volume in ETH
	OneDayVolume float64 `gorm:"column:one_day_volume;not null;default:0"`
	// OwnerCount is the current unique-owner count
	OwnerCount int64 `gorm:"column:owner_count;not null;default:0"`
	// RoyaltyFee is the creator royalty in basis points
	RoyaltyFee float64 `gorm:"column:royalty_fee;not null;default:0"`
	// PriceHistory is a daily floor/average price series
	PriceHistory datatypes.JSON `gorm:"column:price_history;type:jsonb"`
	// OwnersHistory is a daily unique-owner count series
	OwnersHistory datatypes.JSON `gorm:"column:owners_history;type:jsonb"`
	// LastFetched is when the metrics provider was last queried successfully
	LastFetched time.Time `gorm:"column:last_fetched"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the CollectionMetric model
func (CollectionMetric) TableName() string {
	return "collection_metrics"
}
