package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFT represents the nfts table - one row per token of an indexed collection.
// Rows are fully replaced on each collection refresh.
type NFT struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID references the owning collection
	CollectionID int64 `gorm:"column:collection_id;not null;index:idx_nfts_collection_token,unique,priority:1"`
	// TokenID is the decimal form of the token number (string to support very large numbers)
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_nfts_collection_token,unique,priority:2"`
	// Name is the token name from metadata
	Name string `gorm:"column:name;type:text"`
	// ImageURL is the token image from metadata
	ImageURL string `gorm:"column:image_url;type:text"`
	// RawMetadata is the full metadata document as returned by the provider
	RawMetadata datatypes.JSON `gorm:"column:raw_metadata;type:jsonb"`
	// TraitCount is the number of traits extracted from metadata
	TraitCount int `gorm:"column:trait_count;not null;default:0"`
	// RarityScore is the computed rarity score (trait score plus trait-count bonus)
	RarityScore float64 `gorm:"column:rarity_score;not null;default:0"`
	// Rank is the 1-based rarity rank within the collection, 1 is rarest
	Rank int `gorm:"column:rank;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
