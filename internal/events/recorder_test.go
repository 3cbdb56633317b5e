package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/events"
	"github.com/tokenforge/chainledger/internal/mocks"
	"github.com/tokenforge/chainledger/internal/store/schema"
)

func TestRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	hash := "0x37b63dbee11b71cb171b0d60eac2135fba1f013d6db54d8b44780b5a96e72af2"
	tokenID := int64(7)
	amount := "1000"

	rec := events.Record{
		Operation:       domain.OperationMint,
		TxHash:          hash,
		TokenID:         &tokenID,
		Amount:          &amount,
		EventName:       "Minted",
		ContractAddress: "0xC0FFEE",
		Detail:          map[string]interface{}{"amount": amount},
	}

	t.Run("appends both rows and publishes the envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		hub := mocks.NewMockBroadcaster(ctrl)
		pub := mocks.NewMockPublisher(ctrl)
		clock := mocks.NewMockClock(ctrl)

		clock.EXPECT().Now().Return(now)
		st.EXPECT().
			CreateTransaction(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, txn *schema.Transaction) error {
				assert.Equal(t, hash, txn.Hash)
				assert.Equal(t, domain.OperationMint, txn.Operation)
				assert.Equal(t, domain.TransactionStatusConfirmed, txn.Status)
				assert.JSONEq(t, `{"amount":"1000"}`, string(txn.Detail))
				return nil
			})
		st.EXPECT().
			CreateEvent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, event *schema.BlockchainEvent) error {
				assert.Equal(t, hash, event.TransactionHash)
				assert.Equal(t, "Minted", event.EventName)
				assert.Equal(t, "0xC0FFEE", event.ContractAddress)
				assert.Equal(t, uint64(now.Unix()), event.BlockNumber)
				return nil
			})
		hub.EXPECT().
			Publish(gomock.Any()).
			Do(func(envelope domain.EventEnvelope) {
				assert.Equal(t, "mint", envelope.Type)
				assert.Equal(t, now, envelope.Timestamp)
			})
		pub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		events.NewRecorder(st, hub, pub, clock).Record(ctx, rec)
	})

	t.Run("nil publisher still broadcasts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		hub := mocks.NewMockBroadcaster(ctrl)
		clock := mocks.NewMockClock(ctrl)

		clock.EXPECT().Now().Return(now)
		st.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(nil)
		st.EXPECT().CreateEvent(ctx, gomock.Any()).Return(nil)
		hub.EXPECT().Publish(gomock.Any())

		events.NewRecorder(st, hub, nil, clock).Record(ctx, rec)
	})

	t.Run("store failures never stop the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockStore(ctrl)
		hub := mocks.NewMockBroadcaster(ctrl)
		pub := mocks.NewMockPublisher(ctrl)
		clock := mocks.NewMockClock(ctrl)

		clock.EXPECT().Now().Return(now)
		st.EXPECT().CreateTransaction(ctx, gomock.Any()).Return(errors.New("db down"))
		st.EXPECT().CreateEvent(ctx, gomock.Any()).Return(errors.New("db down"))
		hub.EXPECT().Publish(gomock.Any())
		pub.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

		events.NewRecorder(st, hub, pub, clock).Record(ctx, rec)
	})
}
