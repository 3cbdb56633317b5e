package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/adapter"
	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
	"github.com/tokenforge/chainledger/internal/messaging"
	"github.com/tokenforge/chainledger/internal/mocks"
)

func newTestPublisher(t *testing.T) (messaging.Publisher, *mocks.MockNatsConn, *mocks.MockJetStream) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nc, js, nil)

	pub, err := messaging.NewJetStreamPublisher(messaging.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "LEDGER_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "test",
	}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	return pub, nc, js
}

func TestJetStreamPublisher_Publish(t *testing.T) {
	pub, _, js := newTestPublisher(t)

	envelope := &domain.EventEnvelope{
		Type:      "mint",
		Data:      map[string]interface{}{"token_id": float64(7)},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(gomock.Any(), "events.ledger.mint", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			var decoded domain.EventEnvelope
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "mint", decoded.Type)
			return &jetstream.PubAck{Stream: "LEDGER_EVENTS", Sequence: 1}, nil
		})

	err := pub.Publish(context.Background(), envelope)
	require.NoError(t, err)
}

func TestJetStreamPublisher_PublishError(t *testing.T) {
	pub, _, js := newTestPublisher(t)

	js.EXPECT().
		Publish(gomock.Any(), "events.ledger.trade", gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err := pub.Publish(context.Background(), &domain.EventEnvelope{Type: "trade"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestJetStreamPublisher_ConnectError(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	_, err := messaging.NewJetStreamPublisher(messaging.Config{URL: "nats://down:4222"}, natsJS, adapter.NewJSON())
	require.Error(t, err)
}

func TestJetStreamPublisher_Close(t *testing.T) {
	pub, nc, _ := newTestPublisher(t)

	nc.EXPECT().Close()
	pub.Close()
}
