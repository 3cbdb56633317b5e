package txid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/txid"
)

func TestNewTxID(t *testing.T) {
	gen := txid.NewGenerator()

	id, err := gen.NewTxID()
	require.NoError(t, err)
	assert.Len(t, id, 66)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", id)

	other, err := gen.NewTxID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
