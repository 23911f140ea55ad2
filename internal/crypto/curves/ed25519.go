package curves

import (
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/sample"
)

// Ed25519ID is the verifier's identifier for the Ed25519 curve.
const Ed25519ID = 3

var (
	// p = 2^255 - 19
	ed25519P = mustInt("57896044618658097711785492504343953926634992332820282019728792003956564819949")
	// l = 2^252 + 27742317777372353535851937790883648493
	ed25519L = mustInt("7237005577332262213973186563042994240857116359379907606001950938285454250989")

	// d = -121665/121666
	ed25519D = func() *field.Element {
		one := new(field.Element).One()
		num := new(field.Element).Mult32(one, 121665)
		num.Negate(num)
		den := new(field.Element).Mult32(one, 121666)
		den.Invert(den)
		return num.Multiply(num, den)
	}()
)

// Ed25519Curve is the twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 over
// GF(2^255-19) with the standard base point of prime order l.
//
// The group identity is the affine point (0, 1). Results are never reported
// as Infinity; an Infinity input is treated as the identity.
type Ed25519Curve struct{}

// NewEd25519 returns the Ed25519 curve.
func NewEd25519() *Ed25519Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

func (c *Ed25519Curve) ID() uint {
	return Ed25519ID
}

func (c *Ed25519Curve) FieldModulus() *big.Int {
	return new(big.Int).Set(ed25519P)
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519L)
}

func (c *Ed25519Curve) Constants() Constants {
	return Constants{
		CurveID:      c.ID(),
		FieldModulus: c.FieldModulus(),
		CurveOrder:   c.Order(),
	}
}

func (c *Ed25519Curve) Generator() Point {
	return edwardsToAffine(edwards25519.NewGeneratorPoint())
}

func (c *Ed25519Curve) ScalarMul(k uint64) Point {
	return c.ScalarBaseMult(new(big.Int).SetUint64(k))
}

func (c *Ed25519Curve) ScalarBaseMult(k *big.Int) Point {
	res := edwards25519.NewIdentityPoint().ScalarBaseMult(edScalar(k))
	return edwardsToAffine(res)
}

func (c *Ed25519Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	ep, err := affineToEdwards(p)
	if err != nil {
		return Point{}, err
	}
	res := edwards25519.NewIdentityPoint().ScalarMult(edScalar(k), ep)
	return edwardsToAffine(res), nil
}

func (c *Ed25519Curve) Add(p, q Point) (Point, error) {
	ep, err := affineToEdwards(p)
	if err != nil {
		return Point{}, err
	}
	eq, err := affineToEdwards(q)
	if err != nil {
		return Point{}, err
	}
	return edwardsToAffine(edwards25519.NewIdentityPoint().Add(ep, eq)), nil
}

func (c *Ed25519Curve) IsOnCurve(p Point) bool {
	_, err := affineToEdwards(p)
	return err == nil
}

// DeriveY solves y^2 = (1 + x^2) / (1 - d*x^2) and returns the non-negative
// root (even little-endian encoding).
func (c *Ed25519Curve) DeriveY(x *big.Int) (*big.Int, bool) {
	if x.Sign() < 0 || x.Cmp(ed25519P) >= 0 {
		return nil, false
	}
	xe, err := new(field.Element).SetBytes(leBytes32(x))
	if err != nil {
		return nil, false
	}
	one := new(field.Element).One()
	x2 := new(field.Element).Square(xe)
	u := new(field.Element).Add(one, x2)
	v := new(field.Element).Multiply(ed25519D, x2)
	v.Subtract(one, v)

	y, wasSquare := new(field.Element).SqrtRatio(u, v)
	if wasSquare != 1 {
		return nil, false
	}
	return fromLE(y.Bytes()), true
}

func (c *Ed25519Curve) RandomFieldElement(seed uint64) *big.Int {
	return sample.Uniform(seed, ed25519P)
}

// RandomScalar reduces the seed's wide block with SetUniformBytes, which is
// the same little-endian wide reduction as sample.Uniform(seed, l).
func (c *Ed25519Curve) RandomScalar(seed uint64) *big.Int {
	b := sample.Wide(seed)
	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		// Only returned for inputs that are not 64 bytes long.
		panic("curves: " + err.Error())
	}
	return fromLE(s.Bytes())
}

func (c *Ed25519Curve) RandomPoint(seed uint64) Point {
	return c.ScalarBaseMult(c.RandomScalar(seed))
}

// edScalar converts k (any sign, any size) to a canonical scalar mod l.
func edScalar(k *big.Int) *edwards25519.Scalar {
	r := new(big.Int).Mod(k, ed25519L)
	s, err := edwards25519.NewScalar().SetCanonicalBytes(leBytes32(r))
	if err != nil {
		panic("curves: reduced scalar rejected: " + err.Error())
	}
	return s
}

// edwardsToAffine normalizes an extended-coordinate point with one inversion.
func edwardsToAffine(p *edwards25519.Point) Point {
	X, Y, Z, _ := p.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x := new(field.Element).Multiply(X, zInv)
	y := new(field.Element).Multiply(Y, zInv)
	return Point{
		x:      fromLE(x.Bytes()),
		y:      fromLE(y.Bytes()),
		affine: true,
	}
}

// affineToEdwards lifts p to extended coordinates (x : y : 1 : xy).
func affineToEdwards(p Point) (*edwards25519.Point, error) {
	if p.IsInfinity() {
		return edwards25519.NewIdentityPoint(), nil
	}
	if !fieldElementInRange(p.x) || !fieldElementInRange(p.y) {
		return nil, ErrNotOnCurve
	}
	x, err := new(field.Element).SetBytes(leBytes32(p.x))
	if err != nil {
		return nil, ErrNotOnCurve
	}
	y, err := new(field.Element).SetBytes(leBytes32(p.y))
	if err != nil {
		return nil, ErrNotOnCurve
	}
	t := new(field.Element).Multiply(x, y)
	ep, err := new(edwards25519.Point).SetExtendedCoordinates(x, y, new(field.Element).One(), t)
	if err != nil {
		return nil, ErrNotOnCurve
	}
	return ep, nil
}

func fieldElementInRange(n *big.Int) bool {
	return n.Sign() >= 0 && n.Cmp(ed25519P) < 0
}
