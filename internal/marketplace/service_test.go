package marketplace_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/events"
	"github.com/tokenforge/chainledger/internal/marketplace"
	"github.com/tokenforge/chainledger/internal/mocks"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

const testTxHash = "0x7c2a0396ab6de92d31ff98825621c6d1b09e838be9a1b10fd442ea3a62432f39"

type marketplaceMocks struct {
	store    *mocks.MockStore
	recorder *mocks.MockRecorder
	txids    *mocks.MockTxIDGenerator
	clock    *mocks.MockClock
}

func newMarketplaceService(t *testing.T) (marketplace.Service, marketplaceMocks) {
	ctrl := gomock.NewController(t)
	m := marketplaceMocks{
		store:    mocks.NewMockStore(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
		txids:    mocks.NewMockTxIDGenerator(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	return marketplace.NewService(m.store, m.recorder, m.txids, m.clock), m
}

func TestCreateListing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		m.store.EXPECT().
			CreateListing(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, listing *schema.MarketplaceListing) error {
				assert.Equal(t, domain.ListingStatusActive, listing.Status)
				assert.Equal(t, "2.5", listing.Price)
				listing.ID = 42
				return nil
			})

		listing, err := svc.CreateListing(ctx, marketplace.CreateListingRequest{
			TokenID:       7,
			TokenNumber:   "1",
			SellerAddress: "0xSELLER",
			Price:         "2.5",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), listing.ID)
	})

	t.Run("invalid price", func(t *testing.T) {
		for _, price := range []string{"", "0", "-1", "abc"} {
			svc, _ := newMarketplaceService(t)
			_, err := svc.CreateListing(ctx, marketplace.CreateListingRequest{
				TokenID:       7,
				TokenNumber:   "1",
				SellerAddress: "0xSELLER",
				Price:         price,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidPrice, "price %q", price)
		}
	})

	t.Run("expiry in the past", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		m.clock.EXPECT().Now().Return(now)
		past := now.Add(-time.Hour)

		_, err := svc.CreateListing(ctx, marketplace.CreateListingRequest{
			TokenID:       7,
			TokenNumber:   "1",
			SellerAddress: "0xSELLER",
			Price:         "1",
			ExpiresAt:     &past,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidExpiry)
	})

	t.Run("unknown currency token", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		currencyID := int64(404)
		m.store.EXPECT().GetTokenByID(ctx, currencyID).Return(nil, nil)

		_, err := svc.CreateListing(ctx, marketplace.CreateListingRequest{
			TokenID:         7,
			TokenNumber:     "1",
			SellerAddress:   "0xSELLER",
			Price:           "1",
			CurrencyTokenID: &currencyID,
		})
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("store precondition errors pass through", func(t *testing.T) {
		for _, want := range []error{
			domain.ErrNFTNotFound,
			domain.ErrNotOwner,
			domain.ErrDuplicateActiveListing,
		} {
			svc, m := newMarketplaceService(t)
			m.store.EXPECT().CreateListing(ctx, gomock.Any()).Return(want)

			_, err := svc.CreateListing(ctx, marketplace.CreateListingRequest{
				TokenID:       7,
				TokenNumber:   "1",
				SellerAddress: "0xSELLER",
				Price:         "1",
			})
			assert.ErrorIs(t, err, want)
		}
	})
}

func TestBuy(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success records a trade", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		sold := &schema.MarketplaceListing{
			ID:            42,
			TokenID:       7,
			TokenNumber:   "1",
			SellerAddress: "0xSELLER",
			// As read back from numeric(78,18) storage
			Price:  "2.500000000000000000",
			Status: domain.ListingStatusSold,
		}

		m.store.EXPECT().GetOrCreateWallet(ctx, "0xBUYER").Return(&schema.Wallet{ID: 9}, nil)
		m.clock.EXPECT().Now().Return(now)
		m.store.EXPECT().PurchaseListing(ctx, int64(42), "0xBUYER", now).Return(sold, nil)
		m.txids.EXPECT().NewTxID().Return(testTxHash, nil)
		m.recorder.EXPECT().
			Record(ctx, gomock.Any()).
			Do(func(_ context.Context, rec events.Record) {
				assert.Equal(t, domain.OperationTrade, rec.Operation)
				assert.Equal(t, "ListingSold", rec.EventName)
				// The integer amount column never carries a fractional
				// price; the trade's price travels in Detail only.
				assert.Nil(t, rec.Amount)
				assert.Equal(t, "2.5", rec.Detail["price"])
				assert.Equal(t, int64(42), rec.Detail["listing_id"])
			})

		result, err := svc.Buy(ctx, 42, "0xBUYER")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, testTxHash, result.TransactionHash)
	})

	t.Run("purchase failures pass through unrecorded", func(t *testing.T) {
		for _, want := range []error{
			domain.ErrListingNotFound,
			domain.ErrListingExpired,
		} {
			svc, m := newMarketplaceService(t)
			m.store.EXPECT().GetOrCreateWallet(ctx, "0xBUYER").Return(&schema.Wallet{ID: 9}, nil)
			m.clock.EXPECT().Now().Return(now)
			m.store.EXPECT().PurchaseListing(ctx, int64(42), "0xBUYER", now).Return(nil, want)

			_, err := svc.Buy(ctx, 42, "0xBUYER")
			assert.ErrorIs(t, err, want)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		m.store.EXPECT().CancelListing(ctx, int64(42), "0xSELLER").Return(nil)

		result, err := svc.Cancel(ctx, 42, "0xSELLER")
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("wrong seller or absent listing", func(t *testing.T) {
		svc, m := newMarketplaceService(t)
		m.store.EXPECT().CancelListing(ctx, int64(42), "0xEVE").Return(domain.ErrListingNotFound)

		_, err := svc.Cancel(ctx, 42, "0xEVE")
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}
