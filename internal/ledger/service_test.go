package ledger_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/events"
	"github.com/tokenforge/chainledger/internal/ledger"
	"github.com/tokenforge/chainledger/internal/mocks"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

const testTxHash = "0x50a0cf34b1c8546f2aa7fcfa2cf1becc36e2bfd39687b290cad1c4d82d77ea83"

type ledgerMocks struct {
	store    *mocks.MockStore
	recorder *mocks.MockRecorder
	txids    *mocks.MockTxIDGenerator
}

func newLedgerService(t *testing.T) (ledger.Service, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		store:    mocks.NewMockStore(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
		txids:    mocks.NewMockTxIDGenerator(ctrl),
	}
	return ledger.NewService(m.store, m.recorder, m.txids), m
}

func fungibleToken() *schema.Token {
	return &schema.Token{
		ID:         7,
		ContractID: 3,
		Symbol:     "FRG",
		TokenType:  domain.TokenTypeFungible,
		IsMintable: true,
		IsBurnable: true,
	}
}

func TestMint(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		wallet := &schema.Wallet{ID: 11, Address: "0xAAA"}

		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetOrCreateWallet(ctx, "0xAAA").Return(wallet, nil)
		m.store.EXPECT().
			MintBalance(ctx, token.ID, wallet.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, amount domain.Amount) error {
				assert.Equal(t, "1000", amount.String())
				return nil
			})
		m.txids.EXPECT().NewTxID().Return(testTxHash, nil)
		m.store.EXPECT().GetContractByID(ctx, token.ContractID).
			Return(&schema.SmartContract{ID: 3, Address: "0xC0FFEE"}, nil)
		m.recorder.EXPECT().
			Record(ctx, gomock.Any()).
			Do(func(_ context.Context, rec events.Record) {
				assert.Equal(t, domain.OperationMint, rec.Operation)
				assert.Equal(t, testTxHash, rec.TxHash)
				assert.Equal(t, "Minted", rec.EventName)
				assert.Equal(t, "0xC0FFEE", rec.ContractAddress)
				require.NotNil(t, rec.Amount)
				assert.Equal(t, "1000", *rec.Amount)
			})

		result, err := svc.Mint(ctx, ledger.MintRequest{TokenID: token.ID, ToAddress: "0xAAA", Amount: "1000"})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, testTxHash, result.TransactionHash)
		assert.Contains(t, result.Message, "FRG")
	})

	t.Run("invalid amount rejected before any lookup", func(t *testing.T) {
		for _, amount := range []string{"", "0", "-5", "1.5", "abc"} {
			svc, _ := newLedgerService(t)
			_, err := svc.Mint(ctx, ledger.MintRequest{TokenID: 7, ToAddress: "0xAAA", Amount: amount})
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %q", amount)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.store.EXPECT().GetTokenByID(ctx, int64(404)).Return(nil, nil)

		_, err := svc.Mint(ctx, ledger.MintRequest{TokenID: 404, ToAddress: "0xAAA", Amount: "1"})
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("not mintable", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		token.IsMintable = false
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)

		_, err := svc.Mint(ctx, ledger.MintRequest{TokenID: token.ID, ToAddress: "0xAAA", Amount: "1"})
		assert.ErrorIs(t, err, domain.ErrNotMintable)
	})
}

func TestBurn(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		wallet := &schema.Wallet{ID: 11, Address: "0xAAA"}

		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xAAA").Return(wallet, nil)
		m.store.EXPECT().BurnBalance(ctx, token.ID, wallet.ID, gomock.Any()).Return(nil)
		m.txids.EXPECT().NewTxID().Return(testTxHash, nil)
		m.store.EXPECT().GetContractByID(ctx, token.ContractID).Return(nil, nil)
		m.recorder.EXPECT().
			Record(ctx, gomock.Any()).
			Do(func(_ context.Context, rec events.Record) {
				assert.Equal(t, domain.OperationBurn, rec.Operation)
				assert.Equal(t, "Burned", rec.EventName)
				assert.Empty(t, rec.ContractAddress)
			})

		result, err := svc.Burn(ctx, ledger.BurnRequest{TokenID: token.ID, FromAddress: "0xAAA", Amount: "500"})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("not burnable", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		token.IsBurnable = false
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)

		_, err := svc.Burn(ctx, ledger.BurnRequest{TokenID: token.ID, FromAddress: "0xAAA", Amount: "1"})
		assert.ErrorIs(t, err, domain.ErrNotBurnable)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xNOBODY").Return(nil, nil)

		_, err := svc.Burn(ctx, ledger.BurnRequest{TokenID: token.ID, FromAddress: "0xNOBODY", Amount: "1"})
		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})

	t.Run("insufficient balance is not recorded", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		wallet := &schema.Wallet{ID: 11, Address: "0xAAA"}
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xAAA").Return(wallet, nil)
		m.store.EXPECT().
			BurnBalance(ctx, token.ID, wallet.ID, gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		_, err := svc.Burn(ctx, ledger.BurnRequest{TokenID: token.ID, FromAddress: "0xAAA", Amount: "600"})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		sender := &schema.Wallet{ID: 11, Address: "0xAAA"}
		receiver := &schema.Wallet{ID: 12, Address: "0xBBB"}

		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xAAA").Return(sender, nil)
		m.store.EXPECT().GetOrCreateWallet(ctx, "0xBBB").Return(receiver, nil)
		m.store.EXPECT().
			TransferBalance(ctx, token.ID, sender.ID, receiver.ID, gomock.Any()).
			Return(nil)
		m.txids.EXPECT().NewTxID().Return(testTxHash, nil)
		m.store.EXPECT().GetContractByID(ctx, token.ContractID).Return(nil, nil)
		m.recorder.EXPECT().
			Record(ctx, gomock.Any()).
			Do(func(_ context.Context, rec events.Record) {
				assert.Equal(t, domain.OperationTransfer, rec.Operation)
				require.NotNil(t, rec.FromAddress)
				require.NotNil(t, rec.ToAddress)
				assert.Equal(t, "0xAAA", *rec.FromAddress)
				assert.Equal(t, "0xBBB", *rec.ToAddress)
			})

		result, err := svc.Transfer(ctx, ledger.TransferRequest{
			TokenID:     token.ID,
			FromAddress: "0xAAA",
			ToAddress:   "0xBBB",
			Amount:      "200",
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("unknown sender reads as insufficient balance", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xNOBODY").Return(nil, nil)

		_, err := svc.Transfer(ctx, ledger.TransferRequest{
			TokenID:     token.ID,
			FromAddress: "0xNOBODY",
			ToAddress:   "0xBBB",
			Amount:      "1",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("store failure leaves nothing recorded", func(t *testing.T) {
		svc, m := newLedgerService(t)
		token := fungibleToken()
		sender := &schema.Wallet{ID: 11, Address: "0xAAA"}
		receiver := &schema.Wallet{ID: 12, Address: "0xBBB"}
		m.store.EXPECT().GetTokenByID(ctx, token.ID).Return(token, nil)
		m.store.EXPECT().GetWalletByAddress(ctx, "0xAAA").Return(sender, nil)
		m.store.EXPECT().GetOrCreateWallet(ctx, "0xBBB").Return(receiver, nil)
		m.store.EXPECT().
			TransferBalance(ctx, token.ID, sender.ID, receiver.ID, gomock.Any()).
			Return(domain.ErrInsufficientBalance)

		_, err := svc.Transfer(ctx, ledger.TransferRequest{
			TokenID:     token.ID,
			FromAddress: "0xAAA",
			ToAddress:   "0xBBB",
			Amount:      "900",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})
}
