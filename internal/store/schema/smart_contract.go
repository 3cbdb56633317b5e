package schema

import "time"

// SmartContract represents the smart_contracts table - a contract registration on a network
type SmartContract struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NetworkID references the network the contract is deployed on
	NetworkID int64 `gorm:"column:network_id;not null;uniqueIndex:idx_contracts_network_address,priority:1"`
	// Address is the contract address, unique per network
	Address string `gorm:"column:address;not null;type:text;uniqueIndex:idx_contracts_network_address,priority:2"`
	// Name is the contract name
	Name string `gorm:"column:name;not null;type:text"`
	// ContractType identifies the contract standard (erc20, erc721, erc1155)
	ContractType string `gorm:"column:contract_type;not null;type:text"`
	// ABI is the contract interface description, kept verbatim
	ABI string `gorm:"column:abi;type:text"`
	// DeployedBlock is the block number the contract was deployed at
	DeployedBlock uint64 `gorm:"column:deployed_block;type:bigint"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Network Network `gorm:"foreignKey:NetworkID;constraint:OnDelete:CASCADE"`
	Tokens  []Token `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the SmartContract model
func (SmartContract) TableName() string {
	return "smart_contracts"
}
