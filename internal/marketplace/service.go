// Package marketplace implements the NFT listing workflows: create, buy and
// cancel. Listing state transitions happen inside store transactions; this
// layer validates input, resolves the actors and records trade events.
package marketplace

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/adapter"
	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/events"
	"github.com/tokenforge/chainledger/internal/logger"
	"github.com/tokenforge/chainledger/internal/store"
	"github.com/tokenforge/chainledger/internal/store/schema"
	"github.com/tokenforge/chainledger/internal/txid"
)

// CreateListingRequest puts one NFT up for sale at a fixed price
type CreateListingRequest struct {
	TokenID         int64
	TokenNumber     string
	SellerAddress   string
	Price           string
	CurrencyTokenID *int64
	ExpiresAt       *time.Time
}

// Service defines the marketplace boundary
//
//go:generate mockgen -source=service.go -destination=../mocks/marketplace.go -package=mocks -mock_names=Service=MockMarketplaceService
type Service interface {
	// CreateListing validates and inserts an active listing
	CreateListing(ctx context.Context, req CreateListingRequest) (*schema.MarketplaceListing, error)
	// Buy completes an active listing for the buyer, moving NFT ownership
	Buy(ctx context.Context, listingID int64, buyerAddress string) (*domain.OperationResult, error)
	// Cancel withdraws an active listing; only the seller may cancel
	Cancel(ctx context.Context, listingID int64, sellerAddress string) (*domain.OperationResult, error)
}

type service struct {
	store    store.Store
	recorder events.Recorder
	txids    txid.Generator
	clock    adapter.Clock
}

// NewService creates the marketplace service
func NewService(st store.Store, rec events.Recorder, gen txid.Generator, clock adapter.Clock) Service {
	return &service{
		store:    st,
		recorder: rec,
		txids:    gen,
		clock:    clock,
	}
}

// CreateListing validates the request and inserts an active listing. NFT
// existence, seller ownership and active-listing exclusivity are enforced by
// the store inside the insert transaction.
func (s *service) CreateListing(ctx context.Context, req CreateListingRequest) (*schema.MarketplaceListing, error) {
	if !domain.ValidPrice(req.Price) {
		return nil, domain.ErrInvalidPrice
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.clock.Now()) {
		return nil, domain.ErrInvalidExpiry
	}

	if req.CurrencyTokenID != nil {
		currency, err := s.store.GetTokenByID(ctx, *req.CurrencyTokenID)
		if err != nil {
			return nil, err
		}
		if currency == nil {
			return nil, domain.ErrTokenNotFound
		}
	}

	listing := &schema.MarketplaceListing{
		TokenID:         req.TokenID,
		TokenNumber:     req.TokenNumber,
		SellerAddress:   req.SellerAddress,
		Price:           req.Price,
		CurrencyTokenID: req.CurrencyTokenID,
		Status:          domain.ListingStatusActive,
		ExpiresAt:       req.ExpiresAt,
	}
	if err := s.store.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "listing created",
		zap.Int64("listing_id", listing.ID),
		zap.Int64("token_id", listing.TokenID),
		zap.String("token_number", listing.TokenNumber),
		zap.String("seller", listing.SellerAddress),
	)
	return listing, nil
}

// Buy completes an active listing for the buyer. The sold transition and the
// NFT ownership change commit together or not at all.
func (s *service) Buy(ctx context.Context, listingID int64, buyerAddress string) (*domain.OperationResult, error) {
	if _, err := s.store.GetOrCreateWallet(ctx, buyerAddress); err != nil {
		return nil, err
	}

	listing, err := s.store.PurchaseListing(ctx, listingID, buyerAddress, s.clock.Now())
	if err != nil {
		return nil, err
	}

	hash, err := s.txids.NewTxID()
	if err != nil {
		return nil, err
	}

	price := domain.CanonicalPrice(listing.Price)
	s.recorder.Record(ctx, events.Record{
		Operation:   domain.OperationTrade,
		TxHash:      hash,
		TokenID:     &listing.TokenID,
		FromAddress: &listing.SellerAddress,
		ToAddress:   &buyerAddress,
		// Amount stays nil: the column carries integer token quantities and
		// a fractional price would be coerced. The price lives in Detail
		// and on the listing row.
		EventName: "ListingSold",
		Detail: map[string]interface{}{
			"listing_id":   listing.ID,
			"token_id":     listing.TokenID,
			"token_number": listing.TokenNumber,
			"price":        price,
			"seller":       listing.SellerAddress,
			"buyer":        buyerAddress,
		},
	})

	return &domain.OperationResult{
		Success:         true,
		TransactionHash: hash,
		Message:         fmt.Sprintf("purchased listing %d for %s", listing.ID, price),
	}, nil
}

// Cancel withdraws an active listing on behalf of its seller
func (s *service) Cancel(ctx context.Context, listingID int64, sellerAddress string) (*domain.OperationResult, error) {
	if err := s.store.CancelListing(ctx, listingID, sellerAddress); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "listing cancelled",
		zap.Int64("listing_id", listingID),
		zap.String("seller", sellerAddress),
	)
	return &domain.OperationResult{
		Success: true,
		Message: fmt.Sprintf("listing %d cancelled", listingID),
	}, nil
}
