package domain

import (
	"time"
)

// TokenType classifies a registered token
type TokenType string

const (
	// TokenTypeFungible is a divisible balance-tracked token (ERC20-like)
	TokenTypeFungible TokenType = "fungible"
	// TokenTypeNFT is a collection of uniquely numbered tokens (ERC721-like)
	TokenTypeNFT TokenType = "nft"
	// TokenTypeMulti combines fungible editions with per-number metadata (ERC1155-like)
	TokenTypeMulti TokenType = "multi"
)

// WalletType classifies how a wallet's keys are managed
type WalletType string

const (
	WalletTypeExternal  WalletType = "external"
	WalletTypeCustodial WalletType = "custodial"
)

// SystemOwnerUserID is the placeholder owner assigned to wallets created
// implicitly by mint or transfer targets.
const SystemOwnerUserID = "system"

// ListingStatus is the marketplace listing lifecycle state.
// Active is the only non-terminal state; sold, cancelled and expired are terminal.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
	ListingStatusExpired   ListingStatus = "expired"
)

// Terminal reports whether no further transition is permitted from s.
func (s ListingStatus) Terminal() bool {
	return s == ListingStatusSold || s == ListingStatusCancelled || s == ListingStatusExpired
}

// TransactionStatus is the recorded status of a ledger transaction
type TransactionStatus string

const (
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// OperationType identifies a ledger or marketplace mutation
type OperationType string

const (
	OperationMint     OperationType = "mint"
	OperationBurn     OperationType = "burn"
	OperationTransfer OperationType = "transfer"
	OperationTrade    OperationType = "trade"
)

// OperationResult is returned by every balance or trade mutation
type OperationResult struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Message         string `json:"message"`
}

// EventEnvelope is the payload handed to the broadcast hub and the message
// broker after a committed mutation. Delivery is best-effort and must never
// fail the originating transaction.
type EventEnvelope struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
