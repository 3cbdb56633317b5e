package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

// adjustBalance is the single primitive mutating a (wallet, token) balance
// row. It runs on the caller's transaction and never commits on its own.
//
// A positive delta upserts the row, adding to the prior value (zero if the
// row is absent). A negative delta requires an existing row with enough
// balance; the row is locked FOR UPDATE before the check so concurrent
// debits serialize on it. A row that reaches zero is kept, not deleted.
func (s *pgStore) adjustBalance(tx *gorm.DB, walletID, tokenID int64, delta domain.Amount) error {
	var row schema.Balance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_id = ? AND token_id = ?", walletID, tokenID).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if delta.Sign() <= 0 {
			return domain.ErrWalletNotFound
		}
		row = schema.Balance{
			WalletID: walletID,
			TokenID:  tokenID,
			Balance:  delta.String(),
		}
		// Concurrent first credits race on the insert; the unique index
		// resolves them into one row with the summed balance.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "wallet_id"}, {Name: "token_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"balance":    gorm.Expr("balances.balance + EXCLUDED.balance"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to upsert balance: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to lock balance: %w", err)
	}

	current, err := domain.ParseBalance(row.Balance)
	if err != nil {
		return fmt.Errorf("corrupt balance row %d: %w", row.ID, err)
	}

	next := current.Add(delta)
	if next.Sign() < 0 {
		return domain.ErrInsufficientBalance
	}

	err = tx.Model(&schema.Balance{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"balance":    next.String(),
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// adjustTotalSupply moves a token's recorded circulating supply by delta
// within the caller's transaction.
func (s *pgStore) adjustTotalSupply(tx *gorm.DB, tokenID int64, delta domain.Amount) error {
	err := tx.Model(&schema.Token{}).
		Where("id = ?", tokenID).
		Update("total_supply", gorm.Expr("COALESCE(total_supply, 0) + ?", delta.String())).Error
	if err != nil {
		return fmt.Errorf("failed to adjust total supply: %w", err)
	}
	return nil
}

// MintBalance atomically credits amount to (wallet, token) and bumps the
// token's total supply
func (s *pgStore) MintBalance(ctx context.Context, tokenID, toWalletID int64, amount domain.Amount) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.adjustBalance(tx, toWalletID, tokenID, amount); err != nil {
			return err
		}
		return s.adjustTotalSupply(tx, tokenID, amount)
	})
}

// BurnBalance atomically debits amount from (wallet, token) and lowers the
// token's total supply
func (s *pgStore) BurnBalance(ctx context.Context, tokenID, fromWalletID int64, amount domain.Amount) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.adjustBalance(tx, fromWalletID, tokenID, amount.Neg()); err != nil {
			return err
		}
		return s.adjustTotalSupply(tx, tokenID, amount.Neg())
	})
}

// TransferBalance debits the sender and credits the receiver in one
// transaction. The sender side runs first; any failure aborts the whole
// transaction, so a committed transfer always shows both sides.
func (s *pgStore) TransferBalance(ctx context.Context, tokenID, fromWalletID, toWalletID int64, amount domain.Amount) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.adjustBalance(tx, fromWalletID, tokenID, amount.Neg()); err != nil {
			// A sender with no balance row cannot cover any amount
			if errors.Is(err, domain.ErrWalletNotFound) {
				return domain.ErrInsufficientBalance
			}
			return err
		}
		return s.adjustBalance(tx, toWalletID, tokenID, amount)
	})
}
