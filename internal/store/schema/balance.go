package schema

import "time"

// Balance represents the balances table - one row per (wallet, token) pair.
// Rows are created lazily on first credit and kept when they reach zero.
// The balance value is never negative; debits that would underflow are
// rejected before any write.
type Balance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletID references the holding wallet
	WalletID int64 `gorm:"column:wallet_id;not null;uniqueIndex:idx_balances_wallet_token,priority:1"`
	// TokenID references the held token
	TokenID int64 `gorm:"column:token_id;not null;uniqueIndex:idx_balances_wallet_token,priority:2"`
	// Balance is the held amount (string to support up to 78 digits)
	Balance string `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the timestamp when this balance was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Wallet Wallet `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
	Token  Token  `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
