package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/sample"
)

// Secp256k1ID is the verifier's identifier for the secp256k1 curve.
const Secp256k1ID = 2

// Secp256k1 is the short Weierstrass curve y^2 = x^3 + 7. Its identity has
// no affine form and is reported as Infinity.
type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() *Secp256k1 {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) ID() uint {
	return Secp256k1ID
}

func (c *Secp256k1) FieldModulus() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().P)
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) Constants() Constants {
	return Constants{
		CurveID:      c.ID(),
		FieldModulus: c.FieldModulus(),
		CurveOrder:   c.Order(),
	}
}

func (c *Secp256k1) Generator() Point {
	params := secp256k1.S256().Params()
	return NewPoint(params.Gx, params.Gy)
}

func (c *Secp256k1) ScalarMul(k uint64) Point {
	return c.ScalarBaseMult(new(big.Int).SetUint64(k))
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) Point {
	kk := new(big.Int).Mod(k, secp256k1.S256().Params().N)
	if kk.Sign() == 0 {
		return Infinity()
	}
	return fromXY(secp256k1.S256().ScalarBaseMult(kk.Bytes()))
}

func (c *Secp256k1) ScalarMult(p Point, k *big.Int) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	kk := new(big.Int).Mod(k, secp256k1.S256().Params().N)
	if p.IsInfinity() || kk.Sign() == 0 {
		return Infinity(), nil
	}
	return fromXY(secp256k1.S256().ScalarMult(p.x, p.y, kk.Bytes())), nil
}

func (c *Secp256k1) Add(p, q Point) (Point, error) {
	if !c.IsOnCurve(p) || !c.IsOnCurve(q) {
		return Point{}, ErrNotOnCurve
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	return fromXY(secp256k1.S256().Add(p.x, p.y, q.x, q.y)), nil
}

func (c *Secp256k1) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	return secp256k1.S256().IsOnCurve(p.x, p.y)
}

// DeriveY returns the even root of y^2 = x^3 + 7.
func (c *Secp256k1) DeriveY(x *big.Int) (*big.Int, bool) {
	if x.Sign() < 0 || x.Cmp(secp256k1.S256().Params().P) >= 0 {
		return nil, false
	}
	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(x.Bytes())
	if !secp256k1.DecompressY(&fx, false, &fy) {
		return nil, false
	}
	fy.Normalize()
	yb := fy.Bytes()
	return new(big.Int).SetBytes(yb[:]), true
}

func (c *Secp256k1) RandomFieldElement(seed uint64) *big.Int {
	return sample.Uniform(seed, secp256k1.S256().Params().P)
}

func (c *Secp256k1) RandomScalar(seed uint64) *big.Int {
	return sample.Uniform(seed, secp256k1.S256().Params().N)
}

func (c *Secp256k1) RandomPoint(seed uint64) Point {
	return c.ScalarBaseMult(c.RandomScalar(seed))
}

// fromXY maps the (0, 0) convention of the big.Int curve API to Infinity.
func fromXY(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Infinity()
	}
	return Point{x: x, y: y, affine: true}
}
