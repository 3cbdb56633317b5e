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

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the ledger schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Network{},
		&schema.SmartContract{},
		&schema.Wallet{},
		&schema.Token{},
		&schema.Balance{},
		&schema.NFTMetadata{},
		&schema.MarketplaceListing{},
		&schema.BlockchainEvent{},
		&schema.Transaction{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateNetwork registers a network
func (s *pgStore) CreateNetwork(ctx context.Context, network *schema.Network) error {
	if err := s.db.WithContext(ctx).Create(network).Error; err != nil {
		return fmt.Errorf("failed to create network: %w", err)
	}
	return nil
}

// GetNetworkByID retrieves a network by its internal ID
func (s *pgStore) GetNetworkByID(ctx context.Context, id int64) (*schema.Network, error) {
	var network schema.Network
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&network).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get network: %w", err)
	}
	return &network, nil
}

// ListNetworks retrieves all registered networks
func (s *pgStore) ListNetworks(ctx context.Context) ([]*schema.Network, error) {
	var networks []*schema.Network
	if err := s.db.WithContext(ctx).Order("id").Find(&networks).Error; err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	return networks, nil
}

// CreateContract registers a smart contract
func (s *pgStore) CreateContract(ctx context.Context, contract *schema.SmartContract) error {
	if err := s.db.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

// GetContractByID retrieves a contract by its internal ID
func (s *pgStore) GetContractByID(ctx context.Context, id int64) (*schema.SmartContract, error) {
	var contract schema.SmartContract
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

// CreateWallet registers a wallet
func (s *pgStore) CreateWallet(ctx context.Context, wallet *schema.Wallet) error {
	if err := s.db.WithContext(ctx).Create(wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrWalletExists
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetWalletByAddress retrieves a wallet by its address
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetOrCreateWallet resolves a wallet by address, creating a system-owned
// placeholder row when the address is unknown. The upsert makes concurrent
// first references to the same address converge on one row.
func (s *pgStore) GetOrCreateWallet(ctx context.Context, address string) (*schema.Wallet, error) {
	wallet := schema.Wallet{
		Address:     address,
		OwnerUserID: domain.SystemOwnerUserID,
		WalletType:  domain.WalletTypeExternal,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_used_at": gorm.Expr("now()")}),
	}).Create(&wallet).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create wallet: %w", err)
	}

	// Re-read to pick up the surviving row on conflict
	return s.GetWalletByAddress(ctx, address)
}

// CreateToken registers a token
func (s *pgStore) CreateToken(ctx context.Context, token *schema.Token) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSymbolTaken
		}
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// GetTokenByID retrieves a token by its internal ID
func (s *pgStore) GetTokenByID(ctx context.Context, id int64) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// ListTokens retrieves tokens matching the filter
func (s *pgStore) ListTokens(ctx context.Context, filter TokenFilter) ([]*schema.Token, error) {
	q := s.db.WithContext(ctx).Model(&schema.Token{})
	if filter.ContractID != nil {
		q = q.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.TokenType != nil {
		q = q.Where("token_type = ?", *filter.TokenType)
	}
	if filter.Symbol != nil {
		q = q.Where("symbol = ?", *filter.Symbol)
	}
	q = q.Order("id")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var tokens []*schema.Token
	if err := q.Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// GetBalance retrieves the balance row for a (wallet, token) pair
func (s *pgStore) GetBalance(ctx context.Context, walletID, tokenID int64) (*schema.Balance, error) {
	var balance schema.Balance
	err := s.db.WithContext(ctx).
		Where("wallet_id = ? AND token_id = ?", walletID, tokenID).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// ListWalletBalances retrieves all balance rows held by a wallet
func (s *pgStore) ListWalletBalances(ctx context.Context, walletID int64) ([]*schema.Balance, error) {
	var balances []*schema.Balance
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("token_id").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	return balances, nil
}

// CreateNFT records a minted NFT
func (s *pgStore) CreateNFT(ctx context.Context, nft *schema.NFTMetadata) error {
	if err := s.db.WithContext(ctx).Create(nft).Error; err != nil {
		return fmt.Errorf("failed to create nft: %w", err)
	}
	return nil
}

// GetNFT retrieves an NFT by its collection token and serial number
func (s *pgStore) GetNFT(ctx context.Context, tokenID int64, tokenNumber string) (*schema.NFTMetadata, error) {
	var nft schema.NFTMetadata
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND token_number = ?", tokenID, tokenNumber).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return &nft, nil
}

// CreateTransaction appends a transaction record
func (s *pgStore) CreateTransaction(ctx context.Context, txn *schema.Transaction) error {
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByHash retrieves a transaction record by its opaque hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	var txn schema.Transaction
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// CreateEvent appends an immutable event record
func (s *pgStore) CreateEvent(ctx context.Context, event *schema.BlockchainEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// ListEvents retrieves event records matching the filter, newest first
func (s *pgStore) ListEvents(ctx context.Context, filter EventFilter) ([]*schema.BlockchainEvent, error) {
	q := s.db.WithContext(ctx).Model(&schema.BlockchainEvent{})
	if filter.ContractAddress != nil {
		q = q.Where("contract_address = ?", *filter.ContractAddress)
	}
	if filter.EventName != nil {
		q = q.Where("event_name = ?", *filter.EventName)
	}
	if filter.TransactionHash != nil {
		q = q.Where("transaction_hash = ?", *filter.TransactionHash)
	}
	q = q.Order("id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var events []*schema.BlockchainEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Ping verifies store connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
