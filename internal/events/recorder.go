// Package events records trade-visible ledger mutations: it appends the
// immutable transaction/event rows and hands the envelope to the push-stream
// side channels.
package events

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/adapter"
	"github.com/tokenforge/chainledger/internal/broadcast"
	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
	"github.com/tokenforge/chainledger/internal/messaging"
	"github.com/tokenforge/chainledger/internal/store"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

// Record describes one completed mutation to be written to the log
type Record struct {
	Operation       domain.OperationType
	TxHash          string
	TokenID         *int64
	FromAddress     *string
	ToAddress       *string
	Amount          *string
	EventName       string
	ContractAddress string
	Detail          map[string]interface{}
}

// Recorder appends transaction/event rows after a committed mutation and
// publishes the envelope to the broadcast hub and the message broker.
// Recording is best-effort by contract: it runs post-commit and must never
// undo or fail the mutation it describes, so errors are logged, not returned.
//
//go:generate mockgen -source=recorder.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	Record(ctx context.Context, rec Record)
}

type recorder struct {
	store     store.Store
	hub       broadcast.Broadcaster
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewRecorder creates a Recorder. The publisher may be nil when no broker is
// configured; broadcast-only deployments still get the in-process stream.
func NewRecorder(st store.Store, hub broadcast.Broadcaster, pub messaging.Publisher, clock adapter.Clock) Recorder {
	return &recorder{
		store:     st,
		hub:       hub,
		publisher: pub,
		clock:     clock,
	}
}

func (r *recorder) Record(ctx context.Context, rec Record) {
	now := r.clock.Now().UTC()

	detail, err := json.Marshal(rec.Detail)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", rec.TxHash))
		detail = []byte("{}")
	}

	txn := &schema.Transaction{
		Hash:        rec.TxHash,
		Operation:   rec.Operation,
		TokenID:     rec.TokenID,
		FromAddress: rec.FromAddress,
		ToAddress:   rec.ToAddress,
		Amount:      rec.Amount,
		Status:      domain.TransactionStatusConfirmed,
		Detail:      detail,
	}
	if err := r.store.CreateTransaction(ctx, txn); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", rec.TxHash))
	}

	event := &schema.BlockchainEvent{
		TransactionHash: rec.TxHash,
		ContractAddress: rec.ContractAddress,
		EventName:       rec.EventName,
		EventData:       detail,
		// No real chain exists; the block number is a monotonic stand-in
		BlockNumber: uint64(now.Unix()),
	}
	if err := r.store.CreateEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", rec.TxHash))
	}

	envelope := domain.EventEnvelope{
		Type:      string(rec.Operation),
		Data:      rec.Detail,
		Timestamp: now,
	}

	r.hub.Publish(envelope)

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, &envelope); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("tx_hash", rec.TxHash))
		}
	}
}
