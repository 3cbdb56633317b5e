// Package ledger implements the token operation workflows: mint, burn and
// transfer. Every operation validates its preconditions before any write and
// delegates the balance mutation to the store, which runs it in one
// transaction.
package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/events"
	"github.com/tokenforge/chainledger/internal/logger"
	"github.com/tokenforge/chainledger/internal/store"
	"github.com/tokenforge/chainledger/internal/store/schema"
	"github.com/tokenforge/chainledger/internal/txid"
)

// MintRequest credits amount of a token to an address
type MintRequest struct {
	TokenID   int64
	ToAddress string
	Amount    string
}

// BurnRequest debits amount of a token from an address
type BurnRequest struct {
	TokenID     int64
	FromAddress string
	Amount      string
}

// TransferRequest moves amount of a token between two addresses
type TransferRequest struct {
	TokenID     int64
	FromAddress string
	ToAddress   string
	Amount      string
}

// Service defines the token operations boundary
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger.go -package=mocks -mock_names=Service=MockLedgerService
type Service interface {
	// Mint credits amount to the destination address, creating its wallet
	// if needed
	Mint(ctx context.Context, req MintRequest) (*domain.OperationResult, error)
	// Burn debits amount from the source address
	Burn(ctx context.Context, req BurnRequest) (*domain.OperationResult, error)
	// Transfer debits the sender and credits the receiver atomically
	Transfer(ctx context.Context, req TransferRequest) (*domain.OperationResult, error)
}

type service struct {
	store    store.Store
	recorder events.Recorder
	txids    txid.Generator
}

// NewService creates the token operations service
func NewService(st store.Store, rec events.Recorder, gen txid.Generator) Service {
	return &service{
		store:    st,
		recorder: rec,
		txids:    gen,
	}
}

// Mint credits amount of a token to the destination address
func (s *service) Mint(ctx context.Context, req MintRequest) (*domain.OperationResult, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	token, err := s.store.GetTokenByID(ctx, req.TokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}
	if !token.IsMintable {
		return nil, domain.ErrNotMintable
	}

	wallet, err := s.store.GetOrCreateWallet(ctx, req.ToAddress)
	if err != nil {
		return nil, err
	}

	if err := s.store.MintBalance(ctx, token.ID, wallet.ID, amount); err != nil {
		return nil, err
	}

	hash, err := s.txids.NewTxID()
	if err != nil {
		return nil, err
	}

	amountStr := amount.String()
	s.recorder.Record(ctx, events.Record{
		Operation:       domain.OperationMint,
		TxHash:          hash,
		TokenID:         &token.ID,
		ToAddress:       &req.ToAddress,
		Amount:          &amountStr,
		EventName:       "Minted",
		ContractAddress: s.contractAddress(ctx, token),
		Detail: map[string]interface{}{
			"token_id": token.ID,
			"symbol":   token.Symbol,
			"to":       req.ToAddress,
			"amount":   amountStr,
		},
	})

	logger.InfoCtx(ctx, "minted tokens",
		zap.Int64("token_id", token.ID),
		zap.String("to", req.ToAddress),
		zap.String("amount", amountStr),
	)

	return &domain.OperationResult{
		Success:         true,
		TransactionHash: hash,
		Message:         fmt.Sprintf("minted %s %s to %s", amountStr, token.Symbol, req.ToAddress),
	}, nil
}

// Burn debits amount of a token from the source address
func (s *service) Burn(ctx context.Context, req BurnRequest) (*domain.OperationResult, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	token, err := s.store.GetTokenByID(ctx, req.TokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}
	if !token.IsBurnable {
		return nil, domain.ErrNotBurnable
	}

	wallet, err := s.store.GetWalletByAddress(ctx, req.FromAddress)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}

	if err := s.store.BurnBalance(ctx, token.ID, wallet.ID, amount); err != nil {
		return nil, err
	}

	hash, err := s.txids.NewTxID()
	if err != nil {
		return nil, err
	}

	amountStr := amount.String()
	s.recorder.Record(ctx, events.Record{
		Operation:       domain.OperationBurn,
		TxHash:          hash,
		TokenID:         &token.ID,
		FromAddress:     &req.FromAddress,
		Amount:          &amountStr,
		EventName:       "Burned",
		ContractAddress: s.contractAddress(ctx, token),
		Detail: map[string]interface{}{
			"token_id": token.ID,
			"symbol":   token.Symbol,
			"from":     req.FromAddress,
			"amount":   amountStr,
		},
	})

	return &domain.OperationResult{
		Success:         true,
		TransactionHash: hash,
		Message:         fmt.Sprintf("burned %s %s from %s", amountStr, token.Symbol, req.FromAddress),
	}, nil
}

// Transfer debits the sender and credits the receiver as one transaction
func (s *service) Transfer(ctx context.Context, req TransferRequest) (*domain.OperationResult, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	token, err := s.store.GetTokenByID(ctx, req.TokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrTokenNotFound
	}

	sender, err := s.store.GetWalletByAddress(ctx, req.FromAddress)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		// An unknown sender holds nothing; never treat it as a zero
		// balance that permits a debit
		return nil, domain.ErrInsufficientBalance
	}

	receiver, err := s.store.GetOrCreateWallet(ctx, req.ToAddress)
	if err != nil {
		return nil, err
	}

	if err := s.store.TransferBalance(ctx, token.ID, sender.ID, receiver.ID, amount); err != nil {
		return nil, err
	}

	hash, err := s.txids.NewTxID()
	if err != nil {
		return nil, err
	}

	amountStr := amount.String()
	s.recorder.Record(ctx, events.Record{
		Operation:       domain.OperationTransfer,
		TxHash:          hash,
		TokenID:         &token.ID,
		FromAddress:     &req.FromAddress,
		ToAddress:       &req.ToAddress,
		Amount:          &amountStr,
		EventName:       "Transferred",
		ContractAddress: s.contractAddress(ctx, token),
		Detail: map[string]interface{}{
			"token_id": token.ID,
			"symbol":   token.Symbol,
			"from":     req.FromAddress,
			"to":       req.ToAddress,
			"amount":   amountStr,
		},
	})

	return &domain.OperationResult{
		Success:         true,
		TransactionHash: hash,
		Message:         fmt.Sprintf("transferred %s %s from %s to %s", amountStr, token.Symbol, req.FromAddress, req.ToAddress),
	}, nil
}

// contractAddress resolves the token's contract address for event records.
// Recording survives a failed lookup with an empty address.
func (s *service) contractAddress(ctx context.Context, token *schema.Token) string {
	contract, err := s.store.GetContractByID(ctx, token.ContractID)
	if err != nil || contract == nil {
		return ""
	}
	return contract.Address
}
