package domain

import (
	"math/big"
	"strings"
)

// Amount wraps an arbitrary-precision token amount. Balances and supplies are
// stored as numeric(78,0) strings, so arithmetic never touches a float.
type Amount struct {
	v *big.Int
}

// ParseAmount parses a decimal string into a positive Amount.
// Returns ErrInvalidAmount for malformed, zero or negative input.
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{v: v}, nil
}

// ParseBalance parses a stored balance string, treating empty as zero.
// Unlike ParseAmount it accepts zero, since a kept-at-zero row is valid.
func ParseBalance(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{v: new(big.Int)}, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{v: v}, nil
}

// ValidPrice reports whether s is a positive decimal string usable as a
// listing price. Fractional prices are accepted; exponents and signs are not.
func ValidPrice(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && (!hasFrac || fracPart == "") {
		return false
	}
	for _, part := range []string{intPart, fracPart} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	// Reject all-zero values like "0", "0.0", ".0"
	for _, r := range intPart + fracPart {
		if r != '0' {
			return true
		}
	}
	return false
}

// CanonicalPrice trims the trailing fractional zeros numeric storage pads
// prices with, so "2.500000000000000000" reads back as "2.5". Strings
// without a fraction pass through untouched.
func CanonicalPrice(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !hasFrac {
		return s
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{v: new(big.Int).Neg(a.big())}
}

// Sign returns -1, 0 or 1 depending on the amount's sign.
func (a Amount) Sign() int {
	return a.big().Sign()
}

// Cmp compares a against b, returning -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.big().Sign() == 0
}

// String renders the amount as a decimal string for storage and wire use.
func (a Amount) String() string {
	return a.big().String()
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}
