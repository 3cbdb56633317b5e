package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenforge/chainledger/internal/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "1000", want: "1000"},
		{name: "whitespace trimmed", input: " 42 ", want: "42"},
		{name: "beyond uint64", input: "115792089237316195423570985008687907853269984665640564039457584007913129639935", want: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "negative rejected", input: "-5", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "float rejected", input: "1.5", wantErr: true},
		{name: "garbage rejected", input: "abc", wantErr: true},
		{name: "hex rejected", input: "0x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseBalance(t *testing.T) {
	zero, err := domain.ParseBalance("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	kept, err := domain.ParseBalance("0")
	require.NoError(t, err)
	assert.True(t, kept.IsZero())

	_, err = domain.ParseBalance("-1")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAmountArithmetic(t *testing.T) {
	a, err := domain.ParseAmount("1000")
	require.NoError(t, err)
	b, err := domain.ParseAmount("600")
	require.NoError(t, err)

	assert.Equal(t, "1600", a.Add(b).String())
	assert.Equal(t, "400", a.Sub(b).String())
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Sub(a).IsZero())
}

func TestValidPrice(t *testing.T) {
	valid := []string{"1000000000000000000", "1.5", "0.01", "42"}
	for _, s := range valid {
		assert.True(t, domain.ValidPrice(s), s)
	}

	invalid := []string{"", "0", "0.0", "-1", "1e18", "abc", "1.2.3", " "}
	for _, s := range invalid {
		assert.False(t, domain.ValidPrice(s), s)
	}
}

func TestCanonicalPrice(t *testing.T) {
	cases := map[string]string{
		"2.500000000000000000": "2.5",
		"2.000000000000000000": "2",
		"2.5":                  "2.5",
		"42":                   "42",
		"0.010000":             "0.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, domain.CanonicalPrice(in), in)
	}
}

func TestListingStatusTerminal(t *testing.T) {
	assert.False(t, domain.ListingStatusActive.Terminal())
	assert.True(t, domain.ListingStatusSold.Terminal())
	assert.True(t, domain.ListingStatusCancelled.Terminal())
	assert.True(t, domain.ListingStatusExpired.Terminal())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrTokenNotFound))
	assert.Equal(t, domain.KindPreconditionFailed, domain.KindOf(domain.ErrNotMintable))
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(domain.ErrInvalidPrice))
	assert.Equal(t, domain.KindInsufficientBalance, domain.KindOf(domain.ErrInsufficientBalance))
	assert.Equal(t, domain.KindConflict, domain.KindOf(domain.ErrDuplicateActiveListing))
	assert.Equal(t, domain.KindInternal, domain.KindOf(assert.AnError))
}
