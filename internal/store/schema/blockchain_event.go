package schema

import (
	"time"

	"gorm.io/datatypes"
)

// BlockchainEvent represents the blockchain_events table - an append-only log
// of recorded ledger events. Rows are immutable once written.
type BlockchainEvent struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TransactionHash is the opaque identifier of the originating operation
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text;uniqueIndex:idx_events_tx_log,priority:1"`
	// LogIndex orders multiple events within one transaction
	LogIndex int `gorm:"column:log_index;not null;default:0;uniqueIndex:idx_events_tx_log,priority:2"`
	// ContractAddress is the emitting contract's address
	ContractAddress string `gorm:"column:contract_address;type:text;index"`
	// EventName identifies the event (Minted, Burned, Transferred, ListingSold, ...)
	EventName string `gorm:"column:event_name;not null;type:text;index"`
	// EventData is the ordered key-value payload as JSON
	EventData datatypes.JSON `gorm:"column:event_data;type:jsonb"`
	// BlockNumber is the simulated block the event was recorded in
	BlockNumber uint64 `gorm:"column:block_number;type:bigint"`
	// NetworkID references the network the event belongs to
	NetworkID *int64 `gorm:"column:network_id"`
	// CreatedAt is the timestamp when this record was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BlockchainEvent model
func (BlockchainEvent) TableName() string {
	return "blockchain_events"
}
