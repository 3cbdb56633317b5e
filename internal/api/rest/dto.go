package rest

import (
	"encoding/json"
	"time"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

// Request bodies

type mintRequest struct {
	ToAddress string `json:"to_address" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

type burnRequest struct {
	FromAddress string `json:"from_address" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

type transferRequest struct {
	FromAddress string `json:"from_address" binding:"required"`
	ToAddress   string `json:"to_address" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

type createListingRequest struct {
	TokenID         int64      `json:"token_id" binding:"required"`
	TokenNumber     string     `json:"token_number" binding:"required"`
	SellerAddress   string     `json:"seller_address" binding:"required"`
	Price           string     `json:"price" binding:"required"`
	CurrencyTokenID *int64     `json:"currency_token_id,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type buyRequest struct {
	BuyerAddress string `json:"buyer_address" binding:"required"`
}

type cancelRequest struct {
	SellerAddress string `json:"seller_address" binding:"required"`
}

type registerWalletRequest struct {
	Address     string `json:"address" binding:"required"`
	OwnerUserID string `json:"owner_user_id" binding:"required"`
	WalletType  string `json:"wallet_type" binding:"required,oneof=external custodial"`
}

type createTokenRequest struct {
	ContractID int64   `json:"contract_id" binding:"required"`
	Symbol     string  `json:"symbol" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Decimals   int     `json:"decimals"`
	TokenType  string  `json:"token_type" binding:"required,oneof=fungible nft multi"`
	IsMintable bool    `json:"is_mintable"`
	IsBurnable bool    `json:"is_burnable"`
	MaxSupply  *string `json:"max_supply,omitempty"`
}

// Response bodies

type operationResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Message         string `json:"message"`
}

func toOperationResponse(result *domain.OperationResult) operationResponse {
	return operationResponse{
		Success:         result.Success,
		TransactionHash: result.TransactionHash,
		Message:         result.Message,
	}
}

type walletResponse struct {
	ID          int64     `json:"id"`
	Address     string    `json:"address"`
	OwnerUserID string    `json:"owner_user_id"`
	WalletType  string    `json:"wallet_type"`
	IsCustodial bool      `json:"is_custodial"`
	CreatedAt   time.Time `json:"created_at"`
}

func toWalletResponse(w *schema.Wallet) walletResponse {
	return walletResponse{
		ID:          w.ID,
		Address:     w.Address,
		OwnerUserID: w.OwnerUserID,
		WalletType:  string(w.WalletType),
		IsCustodial: w.IsCustodial,
		CreatedAt:   w.CreatedAt,
	}
}

type tokenResponse struct {
	ID          int64     `json:"id"`
	ContractID  int64     `json:"contract_id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Decimals    int       `json:"decimals"`
	TotalSupply *string   `json:"total_supply,omitempty"`
	MaxSupply   *string   `json:"max_supply,omitempty"`
	TokenType   string    `json:"token_type"`
	IsMintable  bool      `json:"is_mintable"`
	IsBurnable  bool      `json:"is_burnable"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTokenResponse(t *schema.Token) tokenResponse {
	return tokenResponse{
		ID:          t.ID,
		ContractID:  t.ContractID,
		Symbol:      t.Symbol,
		Name:        t.Name,
		Decimals:    t.Decimals,
		TotalSupply: t.TotalSupply,
		MaxSupply:   t.MaxSupply,
		TokenType:   string(t.TokenType),
		IsMintable:  t.IsMintable,
		IsBurnable:  t.IsBurnable,
		CreatedAt:   t.CreatedAt,
	}
}

type balanceResponse struct {
	TokenID   int64     `json:"token_id"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBalanceResponse(b *schema.Balance) balanceResponse {
	return balanceResponse{
		TokenID:   b.TokenID,
		Balance:   b.Balance,
		UpdatedAt: b.UpdatedAt,
	}
}

type nftResponse struct {
	ID           int64           `json:"id"`
	TokenID      int64           `json:"token_id"`
	TokenNumber  string          `json:"token_number"`
	Name         string          `json:"name,omitempty"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	AnimationURL string          `json:"animation_url,omitempty"`
	ExternalURL  string          `json:"external_url,omitempty"`
	Attributes   json.RawMessage `json:"attributes,omitempty"`
	OwnerAddress string          `json:"owner_address"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toNFTResponse(n *schema.NFTMetadata) nftResponse {
	return nftResponse{
		ID:           n.ID,
		TokenID:      n.TokenID,
		TokenNumber:  n.TokenNumber,
		Name:         n.Name,
		Description:  n.Description,
		ImageURL:     n.ImageURL,
		AnimationURL: n.AnimationURL,
		ExternalURL:  n.ExternalURL,
		Attributes:   json.RawMessage(n.Attributes),
		OwnerAddress: n.OwnerAddress,
		CreatedAt:    n.CreatedAt,
	}
}

type listingResponse struct {
	ID              int64      `json:"id"`
	TokenID         int64      `json:"token_id"`
	TokenNumber     string     `json:"token_number"`
	SellerAddress   string     `json:"seller_address"`
	Price           string     `json:"price"`
	CurrencyTokenID *int64     `json:"currency_token_id,omitempty"`
	Status          string     `json:"status"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	SoldAt          *time.Time `json:"sold_at,omitempty"`
	BuyerAddress    *string    `json:"buyer_address,omitempty"`
}

func toListingResponse(l *schema.MarketplaceListing) listingResponse {
	return listingResponse{
		ID:              l.ID,
		TokenID:         l.TokenID,
		TokenNumber:     l.TokenNumber,
		SellerAddress:   l.SellerAddress,
		Price:           domain.CanonicalPrice(l.Price),
		CurrencyTokenID: l.CurrencyTokenID,
		Status:          string(l.Status),
		ExpiresAt:       l.ExpiresAt,
		CreatedAt:       l.CreatedAt,
		SoldAt:          l.SoldAt,
		BuyerAddress:    l.BuyerAddress,
	}
}

type eventResponse struct {
	ID              int64           `json:"id"`
	TransactionHash string          `json:"transaction_hash"`
	LogIndex        int             `json:"log_index"`
	ContractAddress string          `json:"contract_address,omitempty"`
	EventName       string          `json:"event_name"`
	EventData       json.RawMessage `json:"event_data,omitempty"`
	BlockNumber     uint64          `json:"block_number"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toEventResponse(e *schema.BlockchainEvent) eventResponse {
	return eventResponse{
		ID:              e.ID,
		TransactionHash: e.TransactionHash,
		LogIndex:        e.LogIndex,
		ContractAddress: e.ContractAddress,
		EventName:       e.EventName,
		EventData:       json.RawMessage(e.EventData),
		BlockNumber:     e.BlockNumber,
		CreatedAt:       e.CreatedAt,
	}
}

type transactionResponse struct {
	ID          int64           `json:"id"`
	Hash        string          `json:"hash"`
	Operation   string          `json:"operation"`
	TokenID     *int64          `json:"token_id,omitempty"`
	FromAddress *string         `json:"from_address,omitempty"`
	ToAddress   *string         `json:"to_address,omitempty"`
	Amount      *string         `json:"amount,omitempty"`
	Status      string          `json:"status"`
	Detail      json.RawMessage `json:"detail,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toTransactionResponse(txn *schema.Transaction) transactionResponse {
	return transactionResponse{
		ID:          txn.ID,
		Hash:        txn.Hash,
		Operation:   string(txn.Operation),
		TokenID:     txn.TokenID,
		FromAddress: txn.FromAddress,
		ToAddress:   txn.ToAddress,
		Amount:      txn.Amount,
		Status:      string(txn.Status),
		Detail:      json.RawMessage(txn.Detail),
		CreatedAt:   txn.CreatedAt,
	}
}
