package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFTMetadata represents the nft_metadata table - one row per minted NFT.
// OwnerAddress is mutated only by the initial mint and by a completed
// marketplace purchase.
type NFTMetadata struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the collection token this NFT belongs to
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex:idx_nft_token_number,priority:1"`
	// TokenNumber is the per-collection serial, unique per token (string to support very large numbers)
	TokenNumber string `gorm:"column:token_number;not null;type:text;uniqueIndex:idx_nft_token_number,priority:2"`
	// Name is the NFT's display name
	Name string `gorm:"column:name;type:text"`
	// Description is the NFT's description text
	Description string `gorm:"column:description;type:text"`
	// ImageURL points at the NFT's primary image
	ImageURL string `gorm:"column:image_url;type:text"`
	// AnimationURL points at the NFT's animation asset, if any
	AnimationURL string `gorm:"column:animation_url;type:text"`
	// ExternalURL points at an off-platform page for the NFT
	ExternalURL string `gorm:"column:external_url;type:text"`
	// Attributes is the ordered trait list as JSON
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// OwnerAddress is the current holder's wallet address
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;index"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Token Token `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFTMetadata model
func (NFTMetadata) TableName() string {
	return "nft_metadata"
}
