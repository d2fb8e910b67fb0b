package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TrendingCollection represents the trending_collections table - one
// snapshot per scheduled run, three rankings per snapshot. The API serves
// the latest row.
type TrendingCollection struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	ByVolume  datatypes.JSON `gorm:"column:by_volume;type:jsonb"`
	BySales   datatypes.JSON `gorm:"column:by_sales;type:jsonb"`
	ByPrice   datatypes.JSON `gorm:"column:by_price;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now();index"`
}

// TableName specifies the table name for the TrendingCollection model
func (TrendingCollection) TableName() string {
	return "trending_collections"
}
