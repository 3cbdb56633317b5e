package messaging

import (
	"context"

	"github.com/tokenforge/chainledger/internal/domain"
)

// Publisher defines the interface for publishing recorded ledger events to a
// message broker. Delivery is best-effort; a publish failure is logged by the
// caller and never fails the originating mutation.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish sends an event envelope to the broker
	Publish(ctx context.Context, event *domain.EventEnvelope) error
	// Close closes the connection
	Close()
}
