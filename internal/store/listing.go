package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

// CreateListing inserts an active listing. NFT existence, seller ownership
// and active-listing exclusivity are all checked inside one transaction with
// the NFT row locked, so two concurrent creates for the same NFT cannot both
// pass the duplicate check.
func (s *pgStore) CreateListing(ctx context.Context, listing *schema.MarketplaceListing) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var nft schema.NFTMetadata
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_id = ? AND token_number = ?", listing.TokenID, listing.TokenNumber).
			First(&nft).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNFTNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock nft: %w", err)
		}

		if nft.OwnerAddress != listing.SellerAddress {
			return domain.ErrNotOwner
		}

		var active int64
		err = tx.Model(&schema.MarketplaceListing{}).
			Where("token_id = ? AND token_number = ? AND status = ?",
				listing.TokenID, listing.TokenNumber, domain.ListingStatusActive).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed to check active listings: %w", err)
		}
		if active > 0 {
			return domain.ErrDuplicateActiveListing
		}

		listing.Status = domain.ListingStatusActive
		if err := tx.Create(listing).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		return nil
	})
}

// GetListingByID retrieves a listing by its internal ID
func (s *pgStore) GetListingByID(ctx context.Context, id int64) (*schema.MarketplaceListing, error) {
	var listing schema.MarketplaceListing
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ListListings retrieves listings matching the filter
func (s *pgStore) ListListings(ctx context.Context, filter ListingFilter) ([]*schema.MarketplaceListing, error) {
	q := s.db.WithContext(ctx).Model(&schema.MarketplaceListing{})
	if filter.TokenID != nil {
		q = q.Where("token_id = ?", *filter.TokenID)
	}
	if filter.TokenNumber != nil {
		q = q.Where("token_number = ?", *filter.TokenNumber)
	}
	if filter.SellerAddress != nil {
		q = q.Where("seller_address = ?", *filter.SellerAddress)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	q = q.Order("id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var listings []*schema.MarketplaceListing
	if err := q.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// PurchaseListing transitions an active listing to sold and moves NFT
// ownership to the buyer. The listing row is locked FOR UPDATE, and the
// status transition is additionally conditioned on status = 'active' with an
// affected-row check, so two concurrent buys resolve to exactly one winner.
// A listing past its expiry is transitioned to expired instead and
// ErrListingExpired returned.
func (s *pgStore) PurchaseListing(ctx context.Context, listingID int64, buyerAddress string, now time.Time) (*schema.MarketplaceListing, error) {
	var listing schema.MarketplaceListing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock listing: %w", err)
		}

		if listing.Status != domain.ListingStatusActive {
			return domain.ErrListingNotFound
		}

		if listing.ExpiresAt != nil && listing.ExpiresAt.Before(now) {
			return domain.ErrListingExpired
		}

		res := tx.Model(&schema.MarketplaceListing{}).
			Where("id = ? AND status = ?", listingID, domain.ListingStatusActive).
			Updates(map[string]interface{}{
				"status":        domain.ListingStatusSold,
				"sold_at":       now,
				"buyer_address": buyerAddress,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to mark listing sold: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrListingNotFound
		}

		res = tx.Model(&schema.NFTMetadata{}).
			Where("token_id = ? AND token_number = ?", listing.TokenID, listing.TokenNumber).
			Updates(map[string]interface{}{
				"owner_address": buyerAddress,
				"updated_at":    now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to transfer nft ownership: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("nft %d/%s missing for sold listing %d", listing.TokenID, listing.TokenNumber, listingID)
		}

		listing.Status = domain.ListingStatusSold
		listing.SoldAt = &now
		listing.BuyerAddress = &buyerAddress
		return nil
	})

	// Lazy expiry: the terminal transition must stick even though the
	// purchase itself rolled back, so it runs on its own transaction.
	if errors.Is(err, domain.ErrListingExpired) {
		if _, expireErr := s.ExpireListing(ctx, listingID); expireErr != nil {
			return nil, expireErr
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// CancelListing transitions an active listing to cancelled. The seller match
// happens in the WHERE clause, authorizing and finding the row atomically; a
// wrong seller is indistinguishable from an absent listing.
func (s *pgStore) CancelListing(ctx context.Context, listingID int64, sellerAddress string) error {
	res := s.db.WithContext(ctx).Model(&schema.MarketplaceListing{}).
		Where("id = ? AND seller_address = ? AND status = ?",
			listingID, sellerAddress, domain.ListingStatusActive).
		Update("status", domain.ListingStatusCancelled)
	if res.Error != nil {
		return fmt.Errorf("failed to cancel listing: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// ListExpiredListingIDs returns IDs of active listings whose expiry passed
// before asOf, oldest first, capped at limit
func (s *pgStore) ListExpiredListingIDs(ctx context.Context, asOf time.Time, limit int) ([]int64, error) {
	var ids []int64
	q := s.db.WithContext(ctx).Model(&schema.MarketplaceListing{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", domain.ListingStatusActive, asOf).
		Order("expires_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired listings: %w", err)
	}
	return ids, nil
}

// ExpireListing transitions a single active listing to expired, reporting
// whether a row actually changed
func (s *pgStore) ExpireListing(ctx context.Context, listingID int64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&schema.MarketplaceListing{}).
		Where("id = ? AND status = ?", listingID, domain.ListingStatusActive).
		Update("status", domain.ListingStatusExpired)
	if res.Error != nil {
		return false, fmt.Errorf("failed to expire listing: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
