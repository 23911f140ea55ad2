package fixture

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

func allCurves() []curves.Curve {
	return []curves.Curve{curves.NewEd25519(), curves.NewSecp256k1()}
}

func TestSampleDeterministic(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			a := Sample(curve, 17)
			b := Sample(curve, 17)
			assert.Zero(t, a.R.Cmp(b.R))
			assert.Zero(t, a.S.Cmp(b.S))
			assert.Zero(t, a.Z.Cmp(b.Z))
			assert.True(t, a.PublicKey.Equal(b.PublicKey))
			assert.Equal(t, a.V, b.V)
		})
	}
}

func TestSampleStreams(t *testing.T) {
	curve := curves.NewEd25519()
	sig := Sample(curve, 5)

	assert.Zero(t, sig.R.Cmp(curve.RandomScalar(5+RSeedOffset)))
	assert.Zero(t, sig.S.Cmp(curve.RandomScalar(5+SSeedOffset)))
	assert.Zero(t, sig.Z.Cmp(curve.RandomScalar(5+ZSeedOffset)))
	assert.True(t, sig.PublicKey.Equal(curve.RandomPoint(5+PublicKeySeedOffset)))

	// r and s are independent draws, not related by a signing equation.
	assert.NotZero(t, sig.R.Cmp(sig.S))
}

func TestSampleParity(t *testing.T) {
	curve := curves.NewEd25519()
	assert.False(t, Sample(curve, 0).V)
	assert.True(t, Sample(curve, 1).V)
	assert.False(t, Sample(curve, 1<<40).V)
	assert.True(t, Sample(curve, ^uint64(0)).V)
}

func TestSampleSeedWraps(t *testing.T) {
	// seed + offset wraps around instead of panicking.
	curve := curves.NewEd25519()
	sig := Sample(curve, ^uint64(0))
	assert.Zero(t, sig.R.Cmp(curve.RandomScalar(RSeedOffset-1)))
}

// validSignature signs z with private key d and nonce k using textbook ECDSA.
func validSignature(t *testing.T, curve curves.Curve, d, k, z *big.Int) (*Signature, curves.Point) {
	t.Helper()
	n := curve.Order()
	R := curve.ScalarBaseMult(k)
	r := new(big.Int).Mod(R.X(), n)

	s := new(big.Int).Mul(r, d)
	s.Add(s, z)
	s.Mul(s, new(big.Int).ModInverse(k, n))
	s.Mod(s, n)
	require.NotZero(t, s.Sign())

	return &Signature{R: r, S: s, PublicKey: curve.ScalarBaseMult(d), Z: z}, R
}

func TestMSMRecoversNonceCommitment(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			d := big.NewInt(0x1234567)
			k := big.NewInt(0x89abcdef)
			z := big.NewInt(0xfeedface)
			sig, R := validSignature(t, curve, d, k, z)

			msm, err := sig.MSM(curve)
			require.NoError(t, err)
			assert.True(t, msm.Equal(R), "u1*G + u2*P must equal k*G for a valid signature")
		})
	}
}

func TestMSMDegenerate(t *testing.T) {
	curve := curves.NewEd25519()
	sig := Sample(curve, 3)
	sig.S = new(big.Int)

	_, err := sig.MSM(curve)
	assert.ErrorIs(t, err, ErrDegenerateSignature)

	sig.S = curve.Order()
	_, err = sig.WithHints(curve)
	assert.ErrorIs(t, err, ErrDegenerateSignature)
}

func TestMSMRejectsOffCurveKey(t *testing.T) {
	curve := curves.NewEd25519()
	sig := Sample(curve, 3)
	sig.PublicKey = curves.NewPoint(big.NewInt(1), big.NewInt(1))

	_, err := sig.MSM(curve)
	assert.ErrorIs(t, err, curves.ErrNotOnCurve)
}

func TestWithHints(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			for seed := uint64(0); seed < 8; seed++ {
				raw := Sample(curve, seed)
				packed, err := raw.WithHints(curve)
				require.NoError(t, err)

				sig := packed.Signature
				assert.Zero(t, raw.R.Cmp(sig.RX.Big()))
				assert.Zero(t, raw.S.Cmp(sig.S.Big()))
				assert.Zero(t, raw.Z.Cmp(sig.Z.Big()))
				assert.Equal(t, raw.V, sig.V)

				pub := curves.NewPoint(sig.PX.Big(), sig.PY.Big())
				assert.True(t, pub.Equal(raw.PublicKey))
				assert.True(t, curve.IsOnCurve(pub))

				res := packed.MSMHint.Result
				msm := curves.NewPoint(res.X.Big(), res.Y.Big())
				if !res.IsInfinity() {
					assert.True(t, curve.IsOnCurve(msm), "msm hint off curve for seed %d", seed)
				}
				// The fixture is not a valid signature.
				assert.NotZero(t, new(big.Int).Mod(msm.X(), curve.Order()).Cmp(raw.R))

				y := packed.DeriveHint.Y
				if !y.IsZero() {
					assert.True(t, curve.IsOnCurve(curves.NewPoint(raw.R, y.Big())))
				} else {
					_, ok := curve.DeriveY(raw.R)
					assert.False(t, ok)
				}
			}
		})
	}
}

func TestG1PointFrom(t *testing.T) {
	p, err := G1PointFrom(curves.Infinity())
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())

	g := curves.NewEd25519().Generator()
	p, err = G1PointFrom(g)
	require.NoError(t, err)
	assert.Zero(t, g.X().Cmp(p.X.Big()))
	assert.Zero(t, g.Y().Cmp(p.Y.Big()))

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = G1PointFrom(curves.NewPoint(tooBig, big.NewInt(1)))
	assert.ErrorIs(t, err, cairo.ErrOverflow)
}

func TestBuildRoundTrip(t *testing.T) {
	for _, curve := range allCurves() {
		t.Run(curve.Name(), func(t *testing.T) {
			sig, err := Build(curve, 0)
			require.NoError(t, err)

			felts := cairo.Serialize(sig)
			require.Len(t, felts, cairo.ECDSASignatureWithHintSize)

			var back cairo.ECDSASignatureWithHint
			require.NoError(t, cairo.DeserializeExact(felts, &back))
			assert.Equal(t, *sig, back)

			again, err := Build(curve, 0)
			require.NoError(t, err)
			assert.Equal(t, sig, again)
		})
	}
}
