// Package txid generates the opaque transaction identifiers returned by
// ledger and marketplace mutations. No real chain exists, so the value is a
// random 32-byte hex string with a 0x prefix; it is unique per call but
// carries no cryptographic meaning.
package txid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator produces opaque transaction identifiers. A future real-chain
// adapter can replace the random implementation without touching the services.
//
//go:generate mockgen -source=txid.go -destination=../mocks/txid.go -package=mocks -mock_names=Generator=MockTxIDGenerator
type Generator interface {
	// NewTxID returns a fresh opaque transaction identifier
	NewTxID() (string, error)
}

type randomGenerator struct{}

// NewGenerator creates a Generator backed by crypto/rand
func NewGenerator() Generator {
	return &randomGenerator{}
}

func (g *randomGenerator) NewTxID() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}
	return "0x" + hex.EncodeToString(buf[:]), nil
}
