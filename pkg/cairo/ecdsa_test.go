package cairo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func limbs(a, b, c, d uint64) U384 {
	return U384{Limb0: a, Limb1: b, Limb2: c, Limb3: d}
}

func sampleSignatureWithHint() ECDSASignatureWithHint {
	return ECDSASignatureWithHint{
		Signature: ECDSASignature{
			RX: limbs(1, 2, 3, 4),
			S:  U256{Low: uint128.From64(5), High: uint128.From64(6)},
			V:  true,
			PX: limbs(7, 8, 9, 10),
			PY: limbs(11, 12, 13, 14),
			Z:  U256{Low: uint128.From64(15), High: uint128.From64(16)},
		},
		MSMHint: MSMHint{
			Result: G1Point{
				X: limbs(17, 18, 19, 20),
				Y: limbs(21, 22, 23, 24),
			},
		},
		DeriveHint: DerivePointFromXHint{
			Y: limbs(25, 26, 27, 28),
		},
	}
}

func TestECDSASignatureWithHintSerialization(t *testing.T) {
	sig := sampleSignatureWithHint()

	serialized := Serialize(sig)
	require.NotEmpty(t, serialized)
	require.Len(t, serialized, ECDSASignatureWithHintSize)

	var deserialized ECDSASignatureWithHint
	require.NoError(t, Deserialize(serialized, &deserialized))
	assert.Equal(t, sig, deserialized)
}

func TestECDSASignatureWithHintTokenOrder(t *testing.T) {
	// Field order flattening: rx(1..4) s(5,6) v(1) px(7..10) py(11..14)
	// z(15,16) msm(17..24) derive(25..28).
	want := []uint64{1, 2, 3, 4, 5, 6, 1, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := uint64(17); i <= 28; i++ {
		want = append(want, i)
	}

	got := Serialize(sampleSignatureWithHint())
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, NewFelt(w), got[i], "token %d", i)
	}
}

func TestRecordSizes(t *testing.T) {
	assert.Equal(t, 8, G1PointSize)
	assert.Equal(t, 17, ECDSASignatureSize)
	assert.Equal(t, 29, ECDSASignatureWithHintSize)

	sig := sampleSignatureWithHint()
	assert.Len(t, Serialize(sig.Signature), ECDSASignatureSize)
	assert.Len(t, Serialize(sig.MSMHint), MSMHintSize)
	assert.Len(t, Serialize(sig.DeriveHint), DerivePointFromXHintSize)
	assert.Len(t, Serialize(sig.MSMHint.Result), G1PointSize)
}

func TestDeserializeTruncated(t *testing.T) {
	full := Serialize(sampleSignatureWithHint())

	for n := 0; n < len(full); n++ {
		var out ECDSASignatureWithHint
		err := Deserialize(full[:n], &out)
		require.Error(t, err, "prefix of %d tokens", n)
		assert.ErrorIs(t, err, ErrTruncatedInput, "prefix of %d tokens", n)
		assert.Equal(t, ECDSASignatureWithHint{}, out, "no partial record for prefix %d", n)
	}
}

func TestDeserializeErrorPath(t *testing.T) {
	full := Serialize(sampleSignatureWithHint())

	// Cut inside the public key's y-coordinate.
	var out ECDSASignatureWithHint
	err := Deserialize(full[:13], &out)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "ECDSASignatureWithHint", de.Type)
	assert.Equal(t, "signature", de.Field)
	assert.Equal(t,
		"decode ECDSASignatureWithHint.signature: decode ECDSASignature.py: decode u384.limb2: cairo: truncated input",
		err.Error())
}

func TestDeserializeInvalidBool(t *testing.T) {
	felts := Serialize(sampleSignatureWithHint())
	felts[6] = NewFelt(2) // v

	var out ECDSASignatureWithHint
	err := Deserialize(felts, &out)
	assert.ErrorIs(t, err, ErrInvalidBool)
	assert.ErrorContains(t, err, "ECDSASignature.v")
}

func TestDeserializeLimbOverflow(t *testing.T) {
	felts := Serialize(sampleSignatureWithHint())
	felts[0][1] = 1 // rx.limb0 = 1 + 2^64

	var out ECDSASignatureWithHint
	assert.ErrorIs(t, Deserialize(felts, &out), ErrOverflow)
}

func TestDeserializeDoesNotMutateOnError(t *testing.T) {
	existing := sampleSignatureWithHint()
	target := existing

	full := Serialize(sampleSignatureWithHint())
	require.Error(t, Deserialize(full[:20], &target))
	assert.Equal(t, existing, target)
}

func TestDeserializeTrailing(t *testing.T) {
	sig := sampleSignatureWithHint()
	felts := append(Serialize(sig), NewFelt(99), NewFelt(100))

	var lenient ECDSASignatureWithHint
	require.NoError(t, Deserialize(felts, &lenient))
	assert.Equal(t, sig, lenient)

	var strict ECDSASignatureWithHint
	err := DeserializeExact(felts, &strict)
	assert.ErrorIs(t, err, ErrTrailingInput)
	assert.Equal(t, ECDSASignatureWithHint{}, strict)

	require.NoError(t, DeserializeExact(Serialize(sig), &strict))
	assert.Equal(t, sig, strict)
}

func TestG1PointInfinity(t *testing.T) {
	assert.True(t, G1Point{}.IsInfinity())
	assert.False(t, G1Point{Y: U384FromUint64(1)}.IsInfinity())

	var p G1Point
	require.NoError(t, Deserialize(make([]Felt, G1PointSize), &p))
	assert.True(t, p.IsInfinity())
}

func TestDeserializeLeavesReceiverOnEveryPrefix(t *testing.T) {
	existing := sampleSignatureWithHint()
	full := Serialize(existing)
	// Decode into a record whose fields all differ from the source.
	other := sampleSignatureWithHint()
	other.Signature.V = false
	other.Signature.RX = limbs(100, 0, 0, 0)
	other.DeriveHint.Y = limbs(0, 0, 0, 200)

	for n := 0; n < len(full); n++ {
		target := other
		err := Deserialize(full[:n], &target)
		require.ErrorIs(t, err, ErrTruncatedInput, "prefix %d", n)
		assert.Equal(t, other, target, "prefix %d", n)

		var de *DecodeError
		require.True(t, errors.As(err, &de), "prefix %d", n)
		assert.Equal(t, "ECDSASignatureWithHint", de.Type)
	}

	sig := other.Signature
	require.Error(t, Deserialize(Serialize(existing.Signature)[:6], &sig))
	assert.Equal(t, other.Signature, sig)

	pt := other.MSMHint.Result
	require.Error(t, Deserialize(full[:3], &pt))
	assert.Equal(t, other.MSMHint.Result, pt)
}
