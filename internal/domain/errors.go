package domain

import "errors"

var (
	// ErrNetworkNotFound is returned when a network is not found
	ErrNetworkNotFound = errors.New("network not found")

	// ErrContractNotFound is returned when a smart contract is not found
	ErrContractNotFound = errors.New("contract not found")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrWalletNotFound is returned when a wallet has no balance row for the token
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNFTNotFound is returned when no NFT matches (tokenID, tokenNumber)
	ErrNFTNotFound = errors.New("nft not found")

	// ErrListingNotFound is returned when no active listing matches the request
	ErrListingNotFound = errors.New("listing not found")

	// ErrTransactionNotFound is returned when a transaction hash is unknown
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotMintable is returned when minting a token with is_mintable=false
	ErrNotMintable = errors.New("token is not mintable")

	// ErrNotBurnable is returned when burning a token with is_burnable=false
	ErrNotBurnable = errors.New("token is not burnable")

	// ErrNotOwner is returned when the seller does not hold the NFT
	ErrNotOwner = errors.New("seller is not the owner of the nft")

	// ErrListingNotActive is returned on a transition out of a terminal listing state
	ErrListingNotActive = errors.New("listing is not active")

	// ErrListingExpired is returned when buying a listing past its expiry time
	ErrListingExpired = errors.New("listing has expired")

	// ErrInvalidAmount is returned when an amount is not a positive integer string
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPrice is returned when a price is not a positive decimal string
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidExpiry is returned when a listing expiry is not in the future
	ErrInvalidExpiry = errors.New("invalid expiry")

	// ErrInsufficientBalance is returned when a debit would drive a balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateActiveListing is returned when an active listing already exists
	// for the same (tokenID, tokenNumber)
	ErrDuplicateActiveListing = errors.New("active listing already exists for this nft")

	// ErrSymbolTaken is returned when a token symbol is already used within a contract
	ErrSymbolTaken = errors.New("token symbol already registered for this contract")

	// ErrWalletExists is returned when registering an address that is already known
	ErrWalletExists = errors.New("wallet address already registered")
)

// ErrorKind classifies a failure for transport mapping
type ErrorKind string

const (
	KindNotFound            ErrorKind = "not_found"
	KindPreconditionFailed  ErrorKind = "precondition_failed"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindInsufficientBalance ErrorKind = "insufficient_balance"
	KindConflict            ErrorKind = "conflict"
	KindInternal            ErrorKind = "internal"
)

// KindOf maps an error to its kind. Unknown errors are internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNetworkNotFound),
		errors.Is(err, ErrContractNotFound),
		errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrWalletNotFound),
		errors.Is(err, ErrNFTNotFound),
		errors.Is(err, ErrListingNotFound),
		errors.Is(err, ErrTransactionNotFound):
		return KindNotFound
	case errors.Is(err, ErrNotMintable),
		errors.Is(err, ErrNotBurnable),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrListingNotActive),
		errors.Is(err, ErrListingExpired):
		return KindPreconditionFailed
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidExpiry):
		return KindInvalidInput
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrDuplicateActiveListing),
		errors.Is(err, ErrSymbolTaken),
		errors.Is(err, ErrWalletExists):
		return KindConflict
	default:
		return KindInternal
	}
}
