package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/ledger"
	"github.com/tokenforge/chainledger/internal/marketplace"
	"github.com/tokenforge/chainledger/internal/store"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Mint credits token amount to an address
	// POST /api/v1/tokens/:id/mint
	Mint(c *gin.Context)

	// Burn debits token amount from an address
	// POST /api/v1/tokens/:id/burn
	Burn(c *gin.Context)

	// Transfer moves token amount between two addresses
	// POST /api/v1/tokens/:id/transfer
	Transfer(c *gin.Context)

	// CreateToken registers a token under a contract
	// POST /api/v1/tokens
	CreateToken(c *gin.Context)

	// GetToken retrieves a single token by ID
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// ListTokens retrieves tokens with optional filters
	// GET /api/v1/tokens?contract_id=<id>&token_type=<type>&symbol=<symbol>&limit=<limit>&offset=<offset>
	ListTokens(c *gin.Context)

	// RegisterWallet registers a wallet address
	// POST /api/v1/wallets
	RegisterWallet(c *gin.Context)

	// GetWalletBalances retrieves all balances held by a wallet
	// GET /api/v1/wallets/:address/balances
	GetWalletBalances(c *gin.Context)

	// GetNFT retrieves NFT metadata by collection token and serial number
	// GET /api/v1/nfts/:token_id/:token_number
	GetNFT(c *gin.Context)

	// CreateListing puts an NFT up for sale
	// POST /api/v1/marketplace/listings
	CreateListing(c *gin.Context)

	// GetListing retrieves a single listing by ID
	// GET /api/v1/marketplace/listings/:id
	GetListing(c *gin.Context)

	// ListListings retrieves listings with optional filters
	// GET /api/v1/marketplace/listings?token_id=<id>&token_number=<n>&seller=<address>&status=<status>&limit=<limit>&offset=<offset>
	ListListings(c *gin.Context)

	// BuyListing completes a purchase of an active listing
	// POST /api/v1/marketplace/listings/:id/buy
	BuyListing(c *gin.Context)

	// CancelListing withdraws an active listing
	// POST /api/v1/marketplace/listings/:id/cancel
	CancelListing(c *gin.Context)

	// ListEvents retrieves recorded events with optional filters
	// GET /api/v1/events?contract_address=<address>&event_name=<name>&transaction_hash=<hash>&limit=<limit>&offset=<offset>
	ListEvents(c *gin.Context)

	// GetTransaction retrieves a transaction record by hash
	// GET /api/v1/transactions/:hash
	GetTransaction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger ledger.Service
	market marketplace.Service
	store  store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(ledgerSvc ledger.Service, marketSvc marketplace.Service, st store.Store) Handler {
	return &handler{
		ledger: ledgerSvc,
		market: marketSvc,
		store:  st,
	}
}

// Mint credits token amount to an address
func (h *handler) Mint(c *gin.Context) {
	tokenID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.ledger.Mint(c.Request.Context(), ledger.MintRequest{
		TokenID:   tokenID,
		ToAddress: req.ToAddress,
		Amount:    req.Amount,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(result))
}

// Burn debits token amount from an address
func (h *handler) Burn(c *gin.Context) {
	tokenID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req burnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.ledger.Burn(c.Request.Context(), ledger.BurnRequest{
		TokenID:     tokenID,
		FromAddress: req.FromAddress,
		Amount:      req.Amount,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(result))
}

// Transfer moves token amount between two addresses
func (h *handler) Transfer(c *gin.Context) {
	tokenID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.ledger.Transfer(c.Request.Context(), ledger.TransferRequest{
		TokenID:     tokenID,
		FromAddress: req.FromAddress,
		ToAddress:   req.ToAddress,
		Amount:      req.Amount,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(result))
}

// CreateToken registers a token under a contract
func (h *handler) CreateToken(c *gin.Context) {
	var req createTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if req.MaxSupply != nil {
		if _, err := domain.ParseAmount(*req.MaxSupply); err != nil {
			respondBadRequest(c, "invalid max supply")
			return
		}
	}

	decimals := req.Decimals
	if decimals == 0 {
		decimals = 18
	}

	token := &schema.Token{
		ContractID: req.ContractID,
		Symbol:     req.Symbol,
		Name:       req.Name,
		Decimals:   decimals,
		MaxSupply:  req.MaxSupply,
		TokenType:  domain.TokenType(req.TokenType),
		IsMintable: req.IsMintable,
		IsBurnable: req.IsBurnable,
	}
	if err := h.store.CreateToken(c.Request.Context(), token); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTokenResponse(token))
}

// GetToken retrieves a single token by ID
func (h *handler) GetToken(c *gin.Context) {
	tokenID, ok := pathID(c, "id")
	if !ok {
		return
	}

	token, err := h.store.GetTokenByID(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to load token")
		return
	}
	if token == nil {
		respondNotFound(c, "Token not found")
		return
	}

	c.JSON(http.StatusOK, toTokenResponse(token))
}

// ListTokens retrieves tokens with optional filters
func (h *handler) ListTokens(c *gin.Context) {
	filter := store.TokenFilter{}
	filter.Limit, filter.Offset = pagination(c)

	if raw := c.Query("contract_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "invalid contract_id")
			return
		}
		filter.ContractID = &id
	}
	if raw := c.Query("token_type"); raw != "" {
		tokenType := domain.TokenType(raw)
		filter.TokenType = &tokenType
	}
	if raw := c.Query("symbol"); raw != "" {
		filter.Symbol = &raw
	}

	tokens, err := h.store.ListTokens(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list tokens")
		return
	}

	out := make([]tokenResponse, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, toTokenResponse(token))
	}
	c.JSON(http.StatusOK, gin.H{"tokens": out})
}

// RegisterWallet registers a wallet address
func (h *handler) RegisterWallet(c *gin.Context) {
	var req registerWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	walletType := domain.WalletType(req.WalletType)
	wallet := &schema.Wallet{
		Address:     req.Address,
		OwnerUserID: req.OwnerUserID,
		WalletType:  walletType,
		IsCustodial: walletType == domain.WalletTypeCustodial,
	}
	if err := h.store.CreateWallet(c.Request.Context(), wallet); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toWalletResponse(wallet))
}

// GetWalletBalances retrieves all balances held by a wallet
func (h *handler) GetWalletBalances(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	wallet, err := h.store.GetWalletByAddress(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to load wallet")
		return
	}
	if wallet == nil {
		respondNotFound(c, "Wallet not found")
		return
	}

	balances, err := h.store.ListWalletBalances(c.Request.Context(), wallet.ID)
	if err != nil {
		respondInternalError(c, err, "Failed to list balances")
		return
	}

	out := make([]balanceResponse, 0, len(balances))
	for _, balance := range balances {
		out = append(out, toBalanceResponse(balance))
	}
	c.JSON(http.StatusOK, gin.H{
		"address":  wallet.Address,
		"balances": out,
	})
}

// GetNFT retrieves NFT metadata by collection token and serial number
func (h *handler) GetNFT(c *gin.Context) {
	tokenID, ok := pathID(c, "token_id")
	if !ok {
		return
	}
	tokenNumber := c.Param("token_number")
	if tokenNumber == "" {
		respondBadRequest(c, "Token number is required")
		return
	}

	nft, err := h.store.GetNFT(c.Request.Context(), tokenID, tokenNumber)
	if err != nil {
		respondInternalError(c, err, "Failed to load NFT")
		return
	}
	if nft == nil {
		respondNotFound(c, "NFT not found")
		return
	}

	c.JSON(http.StatusOK, toNFTResponse(nft))
}

// CreateListing puts an NFT up for sale
func (h *handler) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	listing, err := h.market.CreateListing(c.Request.Context(), marketplace.CreateListingRequest{
		TokenID:         req.TokenID,
		TokenNumber:     req.TokenNumber,
		SellerAddress:   req.SellerAddress,
		Price:           req.Price,
		CurrencyTokenID: req.CurrencyTokenID,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toListingResponse(listing))
}

// GetListing retrieves a single listing by ID
func (h *handler) GetListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	listing, err := h.store.GetListingByID(c.Request.Context(), listingID)
	if err != nil {
		respondInternalError(c, err, "Failed to load listing")
		return
	}
	if listing == nil {
		respondNotFound(c, "Listing not found")
		return
	}

	c.JSON(http.StatusOK, toListingResponse(listing))
}

// ListListings retrieves listings with optional filters
func (h *handler) ListListings(c *gin.Context) {
	filter := store.ListingFilter{}
	filter.Limit, filter.Offset = pagination(c)

	if raw := c.Query("token_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "invalid token_id")
			return
		}
		filter.TokenID = &id
	}
	if raw := c.Query("token_number"); raw != "" {
		filter.TokenNumber = &raw
	}
	if raw := c.Query("seller"); raw != "" {
		filter.SellerAddress = &raw
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ListingStatus(raw)
		filter.Status = &status
	}

	listings, err := h.store.ListListings(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list listings")
		return
	}

	out := make([]listingResponse, 0, len(listings))
	for _, listing := range listings {
		out = append(out, toListingResponse(listing))
	}
	c.JSON(http.StatusOK, gin.H{"listings": out})
}

// BuyListing completes a purchase of an active listing
func (h *handler) BuyListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.market.Buy(c.Request.Context(), listingID, req.BuyerAddress)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(result))
}

// CancelListing withdraws an active listing
func (h *handler) CancelListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.market.Cancel(c.Request.Context(), listingID, req.SellerAddress)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOperationResponse(result))
}

// ListEvents retrieves recorded events with optional filters
func (h *handler) ListEvents(c *gin.Context) {
	filter := store.EventFilter{}
	filter.Limit, filter.Offset = pagination(c)

	if raw := c.Query("contract_address"); raw != "" {
		filter.ContractAddress = &raw
	}
	if raw := c.Query("event_name"); raw != "" {
		filter.EventName = &raw
	}
	if raw := c.Query("transaction_hash"); raw != "" {
		filter.TransactionHash = &raw
	}

	events, err := h.store.ListEvents(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list events")
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// GetTransaction retrieves a transaction record by hash
func (h *handler) GetTransaction(c *gin.Context) {
	hash := c.Param("hash")
	if hash == "" {
		respondBadRequest(c, "Transaction hash is required")
		return
	}

	txn, err := h.store.GetTransactionByHash(c.Request.Context(), hash)
	if err != nil {
		respondInternalError(c, err, "Failed to load transaction")
		return
	}
	if txn == nil {
		respondNotFound(c, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathID parses an int64 path parameter, responding 400 on garbage
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// pagination parses limit/offset query parameters with sane bounds
func pagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}
