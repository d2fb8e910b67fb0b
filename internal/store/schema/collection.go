package schema

import (
	"time"
)

// Collection represents the collections table - one row per indexed NFT contract
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the lowercased contract address, unique per collection
	ContractAddress string `gorm:"column:contract_address;not null;uniqueIndex;type:text"`
	// Name is the display name of the collection
	Name string `gorm:"column:name;type:text"`
	// Description is the collection description from metadata
	Description string `gorm:"column:description;type:text"`
	// Supply is the declared total supply of the collection, used as the rarity divisor
	Supply int64 `gorm:"column:supply;not null;default:0"`
	// Thumbnail is the collection image URL
	Thumbnail string `gorm:"column:thumbnail;type:text"`
	// Released indicates the collection is live and included in scheduled refreshes
	Released bool `gorm:"column:released;not null;default:false"`
	// Verified indicates the collection passed manual review
	Verified bool `gorm:"column:verified;not null;default:false"`
	// Dead indicates the collection is delisted
	Dead bool `gorm:"column:dead;not null;default:false"`
	// CommunitySubmitted indicates the collection was added by a user rather than curated
	CommunitySubmitted bool `gorm:"column:community_submitted;not null;default:false"`
	// NFTPortUnsupported is flipped permanently when the metrics provider reports the contract as not found
	NFTPortUnsupported bool `gorm:"column:nftport_unsupported;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last update
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Metrics    *CollectionMetric     `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	NFTs       []NFT                 `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	Attributes []CollectionAttribute `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
