package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")

	var dsn string
	var err error

	if dbHost != "" {
		dbPort := os.Getenv("TEST_DB_PORT")
		dbUser := os.Getenv("TEST_DB_USER")
		dbPassword := os.Getenv("TEST_DB_PASSWORD")
		dbName := os.Getenv("TEST_DB_NAME")
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			_ = pgContainer.Terminate(ctx)
			os.Exit(1)
		}
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
		os.Exit(1)
	}

	if err := AutoMigrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
		os.Exit(1)
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initPGTestDB wraps each test in a transaction for isolation
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// seedLedger creates a network, contract, fungible token and two wallets
func seedLedger(t *testing.T, s Store) (token *schema.Token, alice, bob *schema.Wallet) {
	ctx := context.Background()

	network := &schema.Network{Name: "Simnet", ChainID: time.Now().UnixNano(), Currency: "SIM"}
	require.NoError(t, s.CreateNetwork(ctx, network))

	contract := &schema.SmartContract{
		NetworkID:    network.ID,
		Address:      "0xc0ffee",
		Name:         "Forge",
		ContractType: "erc20",
	}
	require.NoError(t, s.CreateContract(ctx, contract))

	token = &schema.Token{
		ContractID: contract.ID,
		Symbol:     "FRG",
		Name:       "Forge Token",
		Decimals:   18,
		TokenType:  domain.TokenTypeFungible,
		IsMintable: true,
		IsBurnable: true,
	}
	require.NoError(t, s.CreateToken(ctx, token))

	var err error
	alice, err = s.GetOrCreateWallet(ctx, "0xAAA")
	require.NoError(t, err)
	bob, err = s.GetOrCreateWallet(ctx, "0xBBB")
	require.NoError(t, err)

	return token, alice, bob
}

func mustAmount(t *testing.T, s string) domain.Amount {
	a, err := domain.ParseAmount(s)
	require.NoError(t, err)
	return a
}

func balanceOf(t *testing.T, s Store, walletID, tokenID int64) string {
	row, err := s.GetBalance(context.Background(), walletID, tokenID)
	require.NoError(t, err)
	if row == nil {
		return ""
	}
	b, err := domain.ParseBalance(row.Balance)
	require.NoError(t, err)
	return b.String()
}

func TestGetOrCreateWallet(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()

	w1, err := s.GetOrCreateWallet(ctx, "0xNEW")
	require.NoError(t, err)
	require.NotNil(t, w1)
	assert.Equal(t, domain.SystemOwnerUserID, w1.OwnerUserID)
	assert.Equal(t, domain.WalletTypeExternal, w1.WalletType)

	// Second resolution returns the same row
	w2, err := s.GetOrCreateWallet(ctx, "0xNEW")
	require.NoError(t, err)
	assert.Equal(t, w1.ID, w2.ID)

	// Explicit registration of a known address conflicts
	err = s.CreateWallet(ctx, &schema.Wallet{
		Address:     "0xNEW",
		OwnerUserID: "user-1",
		WalletType:  domain.WalletTypeExternal,
	})
	assert.ErrorIs(t, err, domain.ErrWalletExists)
}

func TestCreateTokenDuplicateSymbol(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, _, _ := seedLedger(t, s)

	err := s.CreateToken(ctx, &schema.Token{
		ContractID: token.ContractID,
		Symbol:     token.Symbol,
		Name:       "Imposter",
		TokenType:  domain.TokenTypeFungible,
	})
	assert.ErrorIs(t, err, domain.ErrSymbolTaken)
}

func TestMintBurnTransfer(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, alice, bob := seedLedger(t, s)

	// Mint 1000 to alice with no prior balance
	require.NoError(t, s.MintBalance(ctx, token.ID, alice.ID, mustAmount(t, "1000")))
	assert.Equal(t, "1000", balanceOf(t, s, alice.ID, token.ID))

	refreshed, err := s.GetTokenByID(ctx, token.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.TotalSupply)
	supply, err := domain.ParseBalance(*refreshed.TotalSupply)
	require.NoError(t, err)
	assert.Equal(t, "1000", supply.String())

	// Burn 500 brings it to 500
	require.NoError(t, s.BurnBalance(ctx, token.ID, alice.ID, mustAmount(t, "500")))
	assert.Equal(t, "500", balanceOf(t, s, alice.ID, token.ID))

	// Burning 600 more fails and leaves the balance untouched
	err = s.BurnBalance(ctx, token.ID, alice.ID, mustAmount(t, "600"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, "500", balanceOf(t, s, alice.ID, token.ID))

	// Transfer 200 to bob
	require.NoError(t, s.TransferBalance(ctx, token.ID, alice.ID, bob.ID, mustAmount(t, "200")))
	assert.Equal(t, "300", balanceOf(t, s, alice.ID, token.ID))
	assert.Equal(t, "200", balanceOf(t, s, bob.ID, token.ID))

	// Overdraft transfer fails atomically: neither side changes
	err = s.TransferBalance(ctx, token.ID, alice.ID, bob.ID, mustAmount(t, "1000"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, "300", balanceOf(t, s, alice.ID, token.ID))
	assert.Equal(t, "200", balanceOf(t, s, bob.ID, token.ID))
}

func TestBurnWithoutBalanceRow(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, _, bob := seedLedger(t, s)

	err := s.BurnBalance(ctx, token.ID, bob.ID, mustAmount(t, "1"))
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestTransferWithoutSenderRow(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, alice, bob := seedLedger(t, s)

	err := s.TransferBalance(ctx, token.ID, alice.ID, bob.ID, mustAmount(t, "1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestBurnToZeroKeepsRow(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, alice, _ := seedLedger(t, s)

	require.NoError(t, s.MintBalance(ctx, token.ID, alice.ID, mustAmount(t, "10")))
	require.NoError(t, s.BurnBalance(ctx, token.ID, alice.ID, mustAmount(t, "10")))

	row, err := s.GetBalance(ctx, alice.ID, token.ID)
	require.NoError(t, err)
	require.NotNil(t, row, "zero balance row should be kept")
	b, err := domain.ParseBalance(row.Balance)
	require.NoError(t, err)
	assert.True(t, b.IsZero())
}

func TestHugeAmounts(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, alice, _ := seedLedger(t, s)

	big := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	require.NoError(t, s.MintBalance(ctx, token.ID, alice.ID, mustAmount(t, big)))
	assert.Equal(t, big, balanceOf(t, s, alice.ID, token.ID))
}

// seedNFT creates an NFT collection token and one minted NFT owned by seller
func seedNFT(t *testing.T, s Store, seller string) *schema.NFTMetadata {
	ctx := context.Background()
	token, _, _ := seedLedger(t, s)

	collection := &schema.Token{
		ContractID: token.ContractID,
		Symbol:     "ART",
		Name:       "Forge Art",
		TokenType:  domain.TokenTypeNFT,
		IsMintable: true,
	}
	require.NoError(t, s.CreateToken(ctx, collection))

	nft := &schema.NFTMetadata{
		TokenID:      collection.ID,
		TokenNumber:  "1",
		Name:         "Piece #1",
		OwnerAddress: seller,
	}
	require.NoError(t, s.CreateNFT(ctx, nft))
	return nft
}

func TestCreateListing(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "1000000000000000000",
	}
	require.NoError(t, s.CreateListing(ctx, listing))
	assert.Equal(t, domain.ListingStatusActive, listing.Status)

	// A second active listing for the same NFT is rejected
	err := s.CreateListing(ctx, &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "2",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveListing)

	// Unknown NFT
	err = s.CreateListing(ctx, &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   "999",
		SellerAddress: "0xSELLER",
		Price:         "2",
	})
	assert.ErrorIs(t, err, domain.ErrNFTNotFound)

	// Not the owner
	err = s.CreateListing(ctx, &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xMALLORY",
		Price:         "2",
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestListingPriceRoundTrip(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "2.5",
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	// numeric(78,18) pads the stored value with trailing zeros;
	// canonicalization restores the wire form
	got, err := s.GetListingByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "2.500000000000000000", got.Price)
	assert.Equal(t, "2.5", domain.CanonicalPrice(got.Price))
}

func TestPurchaseListing(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "1000000000000000000",
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	now := time.Now().UTC()
	sold, err := s.PurchaseListing(ctx, listing.ID, "0xBUYER", now)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusSold, sold.Status)
	require.NotNil(t, sold.BuyerAddress)
	assert.Equal(t, "0xBUYER", *sold.BuyerAddress)
	require.NotNil(t, sold.SoldAt)

	owned, err := s.GetNFT(ctx, nft.TokenID, nft.TokenNumber)
	require.NoError(t, err)
	assert.Equal(t, "0xBUYER", owned.OwnerAddress)

	// Buying again fails: the listing is no longer active
	_, err = s.PurchaseListing(ctx, listing.ID, "0xOTHER", now)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	// Ownership is unchanged by the failed attempt
	owned, err = s.GetNFT(ctx, nft.TokenID, nft.TokenNumber)
	require.NoError(t, err)
	assert.Equal(t, "0xBUYER", owned.OwnerAddress)
}

func TestPurchaseExpiredListing(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	expired := time.Now().UTC().Add(-time.Hour)
	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "5",
		ExpiresAt:     &expired,
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	_, err := s.PurchaseListing(ctx, listing.ID, "0xBUYER", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrListingExpired)

	// Lazy expiry left the row in the expired state
	row, err := s.GetListingByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusExpired, row.Status)

	// The NFT did not change hands
	owned, err := s.GetNFT(ctx, nft.TokenID, nft.TokenNumber)
	require.NoError(t, err)
	assert.Equal(t, "0xSELLER", owned.OwnerAddress)
}

func TestCancelListing(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "5",
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	// A non-seller cannot cancel, and learns nothing beyond not-found
	err := s.CancelListing(ctx, listing.ID, "0xMALLORY")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	require.NoError(t, s.CancelListing(ctx, listing.ID, "0xSELLER"))

	row, err := s.GetListingByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusCancelled, row.Status)

	// Cancelled is terminal
	err = s.CancelListing(ctx, listing.ID, "0xSELLER")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestExpireListings(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	past := time.Now().UTC().Add(-time.Minute)
	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "5",
		ExpiresAt:     &past,
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	ids, err := s.ListExpiredListingIDs(ctx, time.Now().UTC(), 100)
	require.NoError(t, err)
	require.Contains(t, ids, listing.ID)

	changed, err := s.ExpireListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	// Idempotent on a second pass
	changed, err = s.ExpireListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestTransactionAndEventRecords(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	token, _, _ := seedLedger(t, s)

	from := "0xAAA"
	amount := "1000"
	txn := &schema.Transaction{
		Hash:      "0xabc123",
		Operation: domain.OperationMint,
		TokenID:   &token.ID,
		ToAddress: &from,
		Amount:    &amount,
		Status:    domain.TransactionStatusConfirmed,
	}
	require.NoError(t, s.CreateTransaction(ctx, txn))

	got, err := s.GetTransactionByHash(ctx, "0xabc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OperationMint, got.Operation)

	missing, err := s.GetTransactionByHash(ctx, "0xnope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.CreateEvent(ctx, &schema.BlockchainEvent{
		TransactionHash: "0xabc123",
		EventName:       "Minted",
	}))

	name := "Minted"
	events, err := s.ListEvents(ctx, EventFilter{EventName: &name})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "0xabc123", events[0].TransactionHash)
}

func TestListListingsFilter(t *testing.T) {
	s := initPGTestDB(t)
	ctx := context.Background()
	nft := seedNFT(t, s, "0xSELLER")

	listing := &schema.MarketplaceListing{
		TokenID:       nft.TokenID,
		TokenNumber:   nft.TokenNumber,
		SellerAddress: "0xSELLER",
		Price:         "5",
	}
	require.NoError(t, s.CreateListing(ctx, listing))

	active := domain.ListingStatusActive
	rows, err := s.ListListings(ctx, ListingFilter{Status: &active})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	seller := "0xNOBODY"
	rows, err = s.ListListings(ctx, ListingFilter{SellerAddress: &seller})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
