package broadcast_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/broadcast"
	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func envelope(eventType string) domain.EventEnvelope {
	return domain.EventEnvelope{
		Type:      eventType,
		Data:      map[string]string{"token": "FRG"},
		Timestamp: time.Now().UTC(),
	}
}

func TestSubscribeAndPublish(t *testing.T) {
	hub := broadcast.NewHub(4)
	defer hub.Close()

	_, ch1 := hub.Subscribe()
	_, ch2 := hub.Subscribe()

	hub.Publish(envelope("mint"))

	for _, ch := range []<-chan domain.EventEnvelope{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, "mint", got.Type)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := broadcast.NewHub(4)
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic
	hub.Publish(envelope("burn"))
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	hub := broadcast.NewHub(1)
	defer hub.Close()

	_, slow := hub.Subscribe()
	_, live := hub.Subscribe()

	// Fill the slow subscriber's buffer, then overflow it
	hub.Publish(envelope("transfer"))
	hub.Publish(envelope("transfer"))

	// The slow channel was closed after its buffered event
	<-slow
	_, open := <-slow
	assert.False(t, open)

	// The draining subscriber saw both events
	require.Len(t, live, 2)
}

func TestSubscribeAfterClose(t *testing.T) {
	hub := broadcast.NewHub(4)
	hub.Close()

	_, ch := hub.Subscribe()
	_, open := <-ch
	assert.False(t, open)

	// Close is idempotent
	hub.Close()
}
