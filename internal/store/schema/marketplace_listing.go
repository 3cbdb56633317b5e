package schema

import (
	"time"

	"github.com/tokenforge/chainledger/internal/domain"
)

// MarketplaceListing represents the marketplace_listings table - a fixed-price
// offer for one NFT. Status is a one-way machine: active is the only
// non-terminal state. At most one active listing may exist per
// (token_id, token_number); the store enforces this inside the create
// transaction since the schema carries no partial unique index.
type MarketplaceListing struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID references the NFT's collection token
	TokenID int64 `gorm:"column:token_id;not null;index:idx_listings_token_number,priority:1"`
	// TokenNumber is the per-collection serial of the listed NFT
	TokenNumber string `gorm:"column:token_number;not null;type:text;index:idx_listings_token_number,priority:2"`
	// SellerAddress is the wallet address that created the listing
	SellerAddress string `gorm:"column:seller_address;not null;type:text;index"`
	// Price is the asking price as a decimal string
	Price string `gorm:"column:price;not null;type:numeric(78,18)"`
	// CurrencyTokenID optionally denominates the price in a fungible token
	CurrencyTokenID *int64 `gorm:"column:currency_token_id"`
	// Status is the listing lifecycle state (active, sold, cancelled, expired)
	Status domain.ListingStatus `gorm:"column:status;not null;type:text;index"`
	// ExpiresAt is the optional expiry time; active listings past it are lazily expired
	ExpiresAt *time.Time `gorm:"column:expires_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// SoldAt is the completion time of a successful purchase
	SoldAt *time.Time `gorm:"column:sold_at;type:timestamptz"`
	// BuyerAddress is the purchasing wallet address once sold
	BuyerAddress *string `gorm:"column:buyer_address;type:text"`

	// Associations
	Token         Token  `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
	CurrencyToken *Token `gorm:"foreignKey:CurrencyTokenID"`
}

// TableName specifies the table name for the MarketplaceListing model
func (MarketplaceListing) TableName() string {
	return "marketplace_listings"
}
