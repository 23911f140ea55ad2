package sample

import (
	"bytes"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReaderDeterministic(t *testing.T) {
	a := make([]byte, 128)
	b := make([]byte, 128)

	_, err := io.ReadFull(NewReader(42), a)
	require.NoError(t, err)
	_, err = io.ReadFull(NewReader(42), b)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, make([]byte, 128), a, "keystream should not be all zeros")
}

func TestNewReaderSeedsIndependent(t *testing.T) {
	seeds := []uint64{0, 1, 1000, 2000, 1 << 63, ^uint64(0)}
	seen := make(map[[WideBytes]byte]uint64)
	for _, s := range seeds {
		w := Wide(s)
		if prev, ok := seen[w]; ok {
			t.Fatalf("seeds %d and %d produced the same stream", prev, s)
		}
		seen[w] = s
	}
}

func TestReaderChunkingIsStable(t *testing.T) {
	// Reading in small pieces must yield the same bytes as one large read.
	whole := make([]byte, 100)
	_, err := io.ReadFull(NewReader(7), whole)
	require.NoError(t, err)

	r := NewReader(7)
	var pieces bytes.Buffer
	for pieces.Len() < len(whole) {
		chunk := make([]byte, 3)
		n, err := r.Read(chunk)
		require.NoError(t, err)
		pieces.Write(chunk[:n])
	}
	assert.Equal(t, whole, pieces.Bytes()[:len(whole)])
}

func TestUniformRange(t *testing.T) {
	moduli := []*big.Int{
		big.NewInt(2),
		big.NewInt(1_000_003),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19)),
	}
	for _, m := range moduli {
		for seed := uint64(0); seed < 64; seed++ {
			v := Uniform(seed, m)
			assert.True(t, v.Sign() >= 0, "negative sample")
			assert.True(t, v.Cmp(m) < 0, "sample %s not below %s", v, m)
		}
	}
}

func TestUniformDeterministic(t *testing.T) {
	m, _ := new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	assert.Zero(t, Uniform(99, m).Cmp(Uniform(99, m)))
	assert.NotZero(t, Uniform(99, m).Cmp(Uniform(100, m)))
}

func TestUniformPanicsOnBadModulus(t *testing.T) {
	assert.Panics(t, func() { Uniform(0, big.NewInt(0)) })
	assert.Panics(t, func() { Uniform(0, nil) })
}
