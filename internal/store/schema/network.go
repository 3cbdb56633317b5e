package schema

import "time"

// Network represents the networks table - a registered chain the platform simulates
type Network struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the human-readable network name
	Name string `gorm:"column:name;not null;type:text"`
	// ChainID is the numeric chain identifier, unique across networks
	ChainID int64 `gorm:"column:chain_id;not null;uniqueIndex"`
	// Currency is the symbol of the network's base currency
	Currency string `gorm:"column:currency;not null;type:text"`
	// RPCURL is the simulated RPC endpoint recorded for reference
	RPCURL string `gorm:"column:rpc_url;type:text"`
	// ExplorerURL is the block-explorer base URL recorded for reference
	ExplorerURL string `gorm:"column:explorer_url;type:text"`
	// IsTestnet marks test networks
	IsTestnet bool `gorm:"column:is_testnet;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Contracts []SmartContract `gorm:"foreignKey:NetworkID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Network model
func (Network) TableName() string {
	return "networks"
}
