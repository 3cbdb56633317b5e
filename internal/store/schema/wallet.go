package schema

import (
	"time"

	"github.com/tokenforge/chainledger/internal/domain"
)

// Wallet represents the wallets table. Wallets are created explicitly through
// registration or implicitly when a mint or transfer targets an unknown
// address; implicitly created rows carry the system placeholder owner.
// Wallet rows are never deleted.
type Wallet struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the wallet address, unique across the platform
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// OwnerUserID identifies the platform user owning this wallet
	OwnerUserID string `gorm:"column:owner_user_id;not null;type:text"`
	// WalletType classifies key management (external, custodial)
	WalletType domain.WalletType `gorm:"column:wallet_type;not null;type:text"`
	// IsCustodial marks wallets whose keys the platform holds
	IsCustodial bool `gorm:"column:is_custodial;not null;default:false"`
	// EncryptedKey holds the custodial key material, if any
	EncryptedKey *string `gorm:"column:encrypted_key;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// LastUsedAt is the timestamp of the wallet's most recent ledger activity
	LastUsedAt time.Time `gorm:"column:last_used_at;not null;default:now();type:timestamptz"`

	// Associations
	Balances []Balance `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
