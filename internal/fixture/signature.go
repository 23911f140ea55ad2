// Package fixture assembles synthetic ECDSA signature fixtures.
//
// Fixtures are structurally valid and deterministic in the seed, but r and s
// are sampled independently: no signing equation is evaluated and the
// signatures do not verify.
package fixture

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

// Offsets added to the base seed for each independently sampled value.
const (
	PublicKeySeedOffset = 1000
	RSeedOffset         = 2000
	SSeedOffset         = 3000
	ZSeedOffset         = 4000
)

// ErrDegenerateSignature is returned when s has no inverse modulo the group
// order, so the verifier's MSM scalars are undefined.
var ErrDegenerateSignature = errors.New("fixture: s is zero modulo the group order")

// Signature is a sampled signature before packing.
type Signature struct {
	R         *big.Int
	S         *big.Int
	V         bool
	PublicKey curves.Point
	Z         *big.Int // message digest
}

// Sample draws a signature for seed. The public key, r, s and z come from
// separate streams; v is the parity of the seed.
func Sample(curve curves.Curve, seed uint64) *Signature {
	return &Signature{
		R:         curve.RandomScalar(seed + RSeedOffset),
		S:         curve.RandomScalar(seed + SSeedOffset),
		V:         seed%2 == 1,
		PublicKey: curve.RandomPoint(seed + PublicKeySeedOffset),
		Z:         curve.RandomScalar(seed + ZSeedOffset),
	}
}

// MSM returns u1*G + u2*P with u1 = z/s and u2 = r/s modulo the group order:
// the point an ECDSA verifier reconstructs and compares against r.
func (s *Signature) MSM(curve curves.Curve) (curves.Point, error) {
	n := curve.Order()
	sInv := new(big.Int).ModInverse(new(big.Int).Mod(s.S, n), n)
	if sInv == nil {
		return curves.Point{}, ErrDegenerateSignature
	}
	u1 := new(big.Int).Mul(s.Z, sInv)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(s.R, sInv)
	u2.Mod(u2, n)

	u2P, err := curve.ScalarMult(s.PublicKey, u2)
	if err != nil {
		return curves.Point{}, fmt.Errorf("fixture: msm: %w", err)
	}
	res, err := curve.Add(curve.ScalarBaseMult(u1), u2P)
	if err != nil {
		return curves.Point{}, fmt.Errorf("fixture: msm: %w", err)
	}
	return res, nil
}

// DeriveY returns the y-coordinate paired with r, or zero when r is not the
// x-coordinate of a curve point.
func (s *Signature) DeriveY(curve curves.Curve) *big.Int {
	y, ok := curve.DeriveY(s.R)
	if !ok {
		return new(big.Int)
	}
	return y
}

// WithHints packs the signature and its verifier hints into wire form.
func (s *Signature) WithHints(curve curves.Curve) (*cairo.ECDSASignatureWithHint, error) {
	msm, err := s.MSM(curve)
	if err != nil {
		return nil, err
	}

	var out cairo.ECDSASignatureWithHint
	sig := &out.Signature
	if sig.RX, err = cairo.PackU384(s.R); err != nil {
		return nil, fmt.Errorf("fixture: rx: %w", err)
	}
	if sig.S, err = cairo.PackU256(s.S); err != nil {
		return nil, fmt.Errorf("fixture: s: %w", err)
	}
	sig.V = s.V
	pub, err := G1PointFrom(s.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("fixture: public key: %w", err)
	}
	sig.PX, sig.PY = pub.X, pub.Y
	if sig.Z, err = cairo.PackU256(s.Z); err != nil {
		return nil, fmt.Errorf("fixture: z: %w", err)
	}

	if out.MSMHint.Result, err = G1PointFrom(msm); err != nil {
		return nil, fmt.Errorf("fixture: msm hint: %w", err)
	}
	if out.DeriveHint.Y, err = cairo.PackU384(s.DeriveY(curve)); err != nil {
		return nil, fmt.Errorf("fixture: derive hint: %w", err)
	}
	return &out, nil
}

// G1PointFrom packs an affine point; infinity becomes the zero G1Point.
func G1PointFrom(p curves.Point) (cairo.G1Point, error) {
	if p.IsInfinity() {
		return cairo.G1Point{}, nil
	}
	x, err := cairo.PackU384(p.X())
	if err != nil {
		return cairo.G1Point{}, err
	}
	y, err := cairo.PackU384(p.Y())
	if err != nil {
		return cairo.G1Point{}, err
	}
	return cairo.G1Point{X: x, Y: y}, nil
}

// Build samples the signature for seed and packs it with its hints.
func Build(curve curves.Curve, seed uint64) (*cairo.ECDSASignatureWithHint, error) {
	return Sample(curve, seed).WithHints(curve)
}
