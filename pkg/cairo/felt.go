package cairo

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Felt is a single wire token: an element of the Stark field, held in 256
// bits.
type Felt = uint256.Int

// FeltPrime is the Stark field modulus 2^251 + 17*2^192 + 1.
var FeltPrime = func() Felt {
	p := new(uint256.Int).Lsh(uint256.NewInt(1), 251)
	p.Add(p, new(uint256.Int).Lsh(uint256.NewInt(17), 192))
	p.AddUint64(p, 1)
	return *p
}()

// NewFelt returns v as a token.
func NewFelt(v uint64) Felt {
	return *uint256.NewInt(v)
}

// ParseFelt parses a decimal or 0x-prefixed hexadecimal token.
func ParseFelt(s string) (Felt, error) {
	s = strings.TrimSpace(s)
	n := new(big.Int)
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, ok = n.SetString(s[2:], 16)
	} else {
		_, ok = n.SetString(s, 10)
	}
	if !ok {
		return Felt{}, fmt.Errorf("cairo: invalid felt %q", s)
	}
	if n.Sign() < 0 {
		return Felt{}, fmt.Errorf("%w: %s", ErrFeltRange, s)
	}
	f, overflow := uint256.FromBig(n)
	if overflow || !f.Lt(&FeltPrime) {
		return Felt{}, fmt.Errorf("%w: %s", ErrFeltRange, s)
	}
	return *f, nil
}

// FeltString formats a token in decimal.
func FeltString(f Felt) string {
	return f.ToBig().String()
}

// FeltStrings formats every token in decimal.
func FeltStrings(felts []Felt) []string {
	out := make([]string, len(felts))
	for i := range felts {
		out[i] = FeltString(felts[i])
	}
	return out
}

// ParseFelts parses a list produced by FeltStrings.
func ParseFelts(ss []string) ([]Felt, error) {
	out := make([]Felt, len(ss))
	for i, s := range ss {
		f, err := ParseFelt(s)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
