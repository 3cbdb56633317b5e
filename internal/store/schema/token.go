package schema

import (
	"time"

	"github.com/tokenforge/chainledger/internal/domain"
)

// Token represents the tokens table - a token registered under a smart contract
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractID references the contract this token belongs to
	ContractID int64 `gorm:"column:contract_id;not null;uniqueIndex:idx_tokens_contract_symbol,priority:1"`
	// Symbol is the token ticker, unique per contract
	Symbol string `gorm:"column:symbol;not null;type:text;uniqueIndex:idx_tokens_contract_symbol,priority:2"`
	// Name is the token's display name
	Name string `gorm:"column:name;not null;type:text"`
	// Decimals is the number of decimal places the token amount is denominated in
	Decimals int `gorm:"column:decimals;not null;default:18"`
	// TotalSupply is the current circulating supply (string to support 78-digit values)
	TotalSupply *string `gorm:"column:total_supply;type:numeric(78,0)"`
	// MaxSupply is the supply cap, if any
	MaxSupply *string `gorm:"column:max_supply;type:numeric(78,0)"`
	// TokenType classifies the token (fungible, nft, multi)
	TokenType domain.TokenType `gorm:"column:token_type;not null;type:text"`
	// IsMintable is set at creation and never transitions
	IsMintable bool `gorm:"column:is_mintable;not null;default:false"`
	// IsBurnable is set at creation and never transitions
	IsBurnable bool `gorm:"column:is_burnable;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Contract SmartContract `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
	Balances []Balance     `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
	NFTs     []NFTMetadata `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
