// Package broadcast owns the in-process subscriber set for the push-event
// stream. The ledger core only calls Publish; subscriber state never leaks
// into request handlers.
package broadcast

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
)

// Broadcaster fans recorded events out to in-process subscribers.
// Publish is fire-and-forget: a slow or gone subscriber never stalls or
// fails the publishing mutation.
//
//go:generate mockgen -source=hub.go -destination=../mocks/broadcast.go -package=mocks -mock_names=Broadcaster=MockBroadcaster
type Broadcaster interface {
	// Subscribe registers a subscriber and returns its id and channel
	Subscribe() (id uint64, ch <-chan domain.EventEnvelope)
	// Unsubscribe removes a subscriber and closes its channel
	Unsubscribe(id uint64)
	// Publish delivers the envelope to every live subscriber, dropping
	// any whose buffer is full
	Publish(event domain.EventEnvelope)
	// Close drops all subscribers
	Close()
}

type hub struct {
	mu         sync.Mutex
	nextID     uint64
	subs       map[uint64]chan domain.EventEnvelope
	bufferSize int
	closed     bool
}

// NewHub creates a Broadcaster whose subscriber channels buffer up to
// bufferSize undelivered events.
func NewHub(bufferSize int) Broadcaster {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &hub{
		subs:       make(map[uint64]chan domain.EventEnvelope),
		bufferSize: bufferSize,
	}
}

func (h *hub) Subscribe() (uint64, <-chan domain.EventEnvelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.EventEnvelope, h.bufferSize)
	if h.closed {
		close(ch)
		return 0, ch
	}

	h.nextID++
	h.subs[h.nextID] = ch
	return h.nextID, ch
}

func (h *hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

func (h *hub) Publish(event domain.EventEnvelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- event:
		default:
			// Subscriber stopped draining; drop it rather than block
			delete(h.subs, id)
			close(ch)
			logger.Warn("dropped slow event subscriber", zap.Uint64("subscriber_id", id))
		}
	}
}

func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
