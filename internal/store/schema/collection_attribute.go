package schema

import (
	"time"
)

// CollectionAttribute represents the collection_attributes table - one row
// per distinct (trait name, trait value) observed across a collection,
// including the synthetic "Trait Count" rows.
type CollectionAttribute struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID int64  `gorm:"column:collection_id;not null;index:idx_collection_attributes_nv,unique,priority:1"`
	Name         string `gorm:"column:name;not null;type:text;index:idx_collection_attributes_nv,unique,priority:2"`
	Value        string `gorm:"column:value;not null;type:text;index:idx_collection_attributes_nv,unique,priority:3"`
	// Occurrences is how many NFTs in the collection carry this trait value
	Occurrences int       `gorm:"column:occurrences;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the CollectionAttribute model
func (CollectionAttribute) TableName() string {
	return "collection_attributes"
}
