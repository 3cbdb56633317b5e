package marketplace_test

import (
	"os"
	"testing"

	"github.com/tokenforge/chainledger/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
