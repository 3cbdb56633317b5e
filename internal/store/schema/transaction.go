package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tokenforge/chainledger/internal/domain"
)

// Transaction represents the transactions table - one row per completed
// ledger or marketplace operation, keyed by the generated opaque hash.
// Rows are immutable except for status and confirmation fields.
type Transaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Hash is the opaque transaction identifier (0x-prefixed hex)
	Hash string `gorm:"column:hash;not null;uniqueIndex;type:text"`
	// Operation identifies the mutation that produced this record
	Operation domain.OperationType `gorm:"column:operation;not null;type:text"`
	// TokenID references the token involved, if any
	TokenID *int64 `gorm:"column:token_id"`
	// FromAddress is the debited wallet address (nil for mint)
	FromAddress *string `gorm:"column:from_address;type:text;index"`
	// ToAddress is the credited wallet address (nil for burn)
	ToAddress *string `gorm:"column:to_address;type:text;index"`
	// Amount is the moved amount as a decimal string (nil for trades)
	Amount *string `gorm:"column:amount;type:numeric(78,0)"`
	// Status is the recorded transaction status
	Status domain.TransactionStatus `gorm:"column:status;not null;type:text"`
	// Confirmations is the simulated confirmation count
	Confirmations int `gorm:"column:confirmations;not null;default:1"`
	// Detail carries operation-specific fields as JSON
	Detail datatypes.JSON `gorm:"column:detail;type:jsonb"`
	// CreatedAt is the timestamp when this record was appended
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
