// Package sample derives reproducible pseudo-random values from a 64-bit seed.
//
// Every seed addresses an independent ChaCha20 keystream, so callers can
// carve separate streams out of one base seed (seed+1000, seed+2000, ...)
// without sharing any generator state.
package sample

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"
)

// domain separates the keys derived here from any other use of SHA-256(seed).
const domain = "ecdsa-fixtures/sample/v1"

// WideBytes is the number of stream bytes consumed per sampled element.
// Reducing 512 bits keeps the modulo bias below 2^-250 for 256-bit moduli.
const WideBytes = 64

// Key returns the ChaCha20 key for seed.
func Key(seed uint64) [32]byte {
	var buf [len(domain) + 8]byte
	copy(buf[:], domain)
	binary.LittleEndian.PutUint64(buf[len(domain):], seed)
	return sha256.Sum256(buf[:])
}

type stream struct {
	c *chacha20.Cipher
}

func (s *stream) Read(p []byte) (int, error) {
	clear(p)
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// NewReader returns the keystream addressed by seed. The reader never fails
// and never ends.
func NewReader(seed uint64) io.Reader {
	key := Key(seed)
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic("sample: " + err.Error())
	}
	return &stream{c: c}
}

// Wide returns the first WideBytes bytes of the keystream for seed.
func Wide(seed uint64) [WideBytes]byte {
	var b [WideBytes]byte
	// stream.Read cannot fail.
	_, _ = io.ReadFull(NewReader(seed), b[:])
	return b
}

// Uniform returns an element of [0, modulus) chosen by seed. The wide
// stream block is read as a little-endian integer and reduced.
func Uniform(seed uint64, modulus *big.Int) *big.Int {
	if modulus == nil || modulus.Sign() <= 0 {
		panic("sample: modulus must be positive")
	}
	b := Wide(seed)
	n := new(big.Int).SetBytes(reverse(b[:]))
	return n.Mod(n, modulus)
}

// reverse returns a reversed copy of b.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
