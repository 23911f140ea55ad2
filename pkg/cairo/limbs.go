package cairo

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// maxBits is the capacity of both fixed-width types.
const maxBits = 256

// toWords splits n into four little-endian 64-bit words. nil is zero.
func toWords(typ string, n *big.Int) ([4]uint64, error) {
	var w [4]uint64
	if n == nil {
		return w, nil
	}
	if n.Sign() < 0 {
		return w, fmt.Errorf("pack %s: %w", typ, ErrNegative)
	}
	if n.BitLen() > maxBits {
		return w, fmt.Errorf("pack %s: %w (%d bits)", typ, ErrOverflow, n.BitLen())
	}
	var buf [32]byte
	n.FillBytes(buf[:])
	for i := range w {
		w[i] = binary.BigEndian.Uint64(buf[32-8*(i+1) : 32-8*i])
	}
	return w, nil
}

// fromWords joins four little-endian 64-bit words.
func fromWords(w [4]uint64) *big.Int {
	var buf [32]byte
	for i := range w {
		binary.BigEndian.PutUint64(buf[32-8*(i+1):32-8*i], w[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

// parseDecimal parses a non-negative decimal for UnmarshalText.
func parseDecimal(typ string, text []byte) (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		return nil, fmt.Errorf("cairo: invalid %s %q", typ, text)
	}
	return n, nil
}
