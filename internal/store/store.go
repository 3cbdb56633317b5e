package store

import (
	"context"
	"time"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

// TokenFilter narrows ListTokens. Nil fields are ignored.
type TokenFilter struct {
	ContractID *int64
	TokenType  *domain.TokenType
	Symbol     *string
	Limit      int
	Offset     int
}

// ListingFilter narrows ListListings. Nil fields are ignored.
type ListingFilter struct {
	TokenID       *int64
	TokenNumber   *string
	SellerAddress *string
	Status        *domain.ListingStatus
	Limit         int
	Offset        int
}

// EventFilter narrows ListEvents. Nil fields are ignored.
type EventFilter struct {
	ContractAddress *string
	EventName       *string
	TransactionHash *string
	Limit           int
	Offset          int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateNetwork registers a network
	CreateNetwork(ctx context.Context, network *schema.Network) error
	// GetNetworkByID retrieves a network by its internal ID, nil when absent
	GetNetworkByID(ctx context.Context, id int64) (*schema.Network, error)
	// ListNetworks retrieves all registered networks
	ListNetworks(ctx context.Context) ([]*schema.Network, error)

	// CreateContract registers a smart contract
	CreateContract(ctx context.Context, contract *schema.SmartContract) error
	// GetContractByID retrieves a contract by its internal ID, nil when absent
	GetContractByID(ctx context.Context, id int64) (*schema.SmartContract, error)

	// CreateWallet registers a wallet; ErrWalletExists on a known address
	CreateWallet(ctx context.Context, wallet *schema.Wallet) error
	// GetWalletByAddress retrieves a wallet by address, nil when absent
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// GetOrCreateWallet resolves a wallet by address, creating a
	// system-owned placeholder row for unknown addresses
	GetOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error)

	// CreateToken registers a token; ErrSymbolTaken when the symbol is
	// already used within the contract
	CreateToken(ctx context.Context, token *schema.Token) error
	// GetTokenByID retrieves a token by its internal ID, nil when absent
	GetTokenByID(ctx context.Context, id int64) (*schema.Token, error)
	// ListTokens retrieves tokens matching the filter
	ListTokens(ctx context.Context, filter TokenFilter) ([]*schema.Token, error)

	// GetBalance retrieves the balance row for (wallet, token), nil when absent
	GetBalance(ctx context.Context, walletID, tokenID int64) (*schema.Balance, error)
	// ListWalletBalances retrieves all balance rows held by a wallet
	ListWalletBalances(ctx context.Context, walletID int64) ([]*schema.Balance, error)
	// MintBalance atomically credits amount to (wallet, token) and bumps
	// the token's total supply
	MintBalance(ctx context.Context, tokenID, toWalletID int64, amount domain.Amount) error
	// BurnBalance atomically debits amount from (wallet, token);
	// ErrWalletNotFound without a balance row, ErrInsufficientBalance on underflow
	BurnBalance(ctx context.Context, tokenID, fromWalletID int64, amount domain.Amount) error
	// TransferBalance atomically debits the sender and credits the
	// receiver in one transaction; no partial state is ever committed
	TransferBalance(ctx context.Context, tokenID, fromWalletID, toWalletID int64, amount domain.Amount) error

	// CreateNFT records a minted NFT
	CreateNFT(ctx context.Context, nft *schema.NFTMetadata) error
	// GetNFT retrieves an NFT by (tokenID, tokenNumber), nil when absent
	GetNFT(ctx context.Context, tokenID int64, tokenNumber string) (*schema.NFTMetadata, error)

	// CreateListing inserts an active listing after verifying NFT
	// existence, seller ownership and active-listing exclusivity inside
	// one transaction
	CreateListing(ctx context.Context, listing *schema.MarketplaceListing) error
	// GetListingByID retrieves a listing by ID, nil when absent
	GetListingByID(ctx context.Context, id int64) (*schema.MarketplaceListing, error)
	// ListListings retrieves listings matching the filter
	ListListings(ctx context.Context, filter ListingFilter) ([]*schema.MarketplaceListing, error)
	// PurchaseListing transitions an active listing to sold and moves NFT
	// ownership to the buyer in one transaction. A listing past its
	// expiry is transitioned to expired and ErrListingExpired returned.
	PurchaseListing(ctx context.Context, listingID int64, buyerAddress string, now time.Time) (*schema.MarketplaceListing, error)
	// CancelListing transitions an active listing to cancelled; the
	// seller match happens in the WHERE clause, so a wrong seller is
	// indistinguishable from an absent listing
	CancelListing(ctx context.Context, listingID int64, sellerAddress string) error
	// ListExpiredListingIDs returns IDs of active listings whose expiry
	// passed before asOf, capped at limit
	ListExpiredListingIDs(ctx context.Context, asOf time.Time, limit int) ([]int64, error)
	// ExpireListing transitions a single active listing to expired,
	// reporting whether a row actually changed
	ExpireListing(ctx context.Context, listingID int64) (bool, error)

	// CreateTransaction appends a transaction record
	CreateTransaction(ctx context.Context, txn *schema.Transaction) error
	// GetTransactionByHash retrieves a transaction record, nil when absent
	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)
	// CreateEvent appends an immutable event record
	CreateEvent(ctx context.Context, event *schema.BlockchainEvent) error
	// ListEvents retrieves event records matching the filter, newest first
	ListEvents(ctx context.Context, filter EventFilter) ([]*schema.BlockchainEvent, error)

	// Ping verifies store connectivity
	Ping(ctx context.Context) error
}
