package curves

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrUnknownCurve = errors.New("curves: unknown curve")
	ErrNotOnCurve   = errors.New("curves: point is not on the curve")
)

// Constants are the fixed parameters of a curve as consumed by the verifier.
type Constants struct {
	// CurveID is the opaque curve tag of the downstream verifier. It is
	// never used in arithmetic.
	CurveID      uint
	FieldModulus *big.Int
	CurveOrder   *big.Int
}

// Curve defines the group operations needed to build signature fixtures.
// Points cross this interface in affine form.
type Curve interface {
	// Name returns the lower-case curve name (e.g. "ed25519").
	Name() string

	// ID returns the verifier's curve identifier.
	ID() uint

	// FieldModulus returns the modulus of the coordinate field.
	FieldModulus() *big.Int

	// Order returns the order of the generator.
	Order() *big.Int

	// Constants bundles ID, FieldModulus and Order.
	Constants() Constants

	// Generator returns the canonical base point G.
	Generator() Point

	// ScalarMul computes k * G for a small scalar.
	ScalarMul(k uint64) Point

	// ScalarBaseMult computes k * G. k is reduced modulo the group order.
	ScalarBaseMult(k *big.Int) Point

	// ScalarMult computes k * P.
	ScalarMult(p Point, k *big.Int) (Point, error)

	// Add combines two points.
	Add(p, q Point) (Point, error)

	// IsOnCurve reports whether p is a point of the group.
	IsOnCurve(p Point) bool

	// DeriveY returns the canonical y with (x, y) on the curve. It reports
	// false when x is not the x-coordinate of any point.
	DeriveY(x *big.Int) (*big.Int, bool)

	// RandomFieldElement returns the field element addressed by seed.
	RandomFieldElement(seed uint64) *big.Int

	// RandomScalar returns the scalar addressed by seed.
	RandomScalar(seed uint64) *big.Int

	// RandomPoint returns RandomScalar(seed) * G.
	RandomPoint(seed uint64) Point
}

// Names lists the curves ByName accepts.
func Names() []string {
	return []string{"ed25519", "secp256k1"}
}

// ByName returns the curve registered under name (case-insensitive).
func ByName(name string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ed25519":
		return NewEd25519(), nil
	case "secp256k1":
		return NewSecp256k1(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
}

// mustInt parses a decimal constant.
func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curves: bad constant " + s)
	}
	return n
}

// leBytes32 encodes n (0 <= n < 2^256) as 32 little-endian bytes.
func leBytes32(n *big.Int) []byte {
	var buf [32]byte
	n.FillBytes(buf[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:]
}

// fromLE decodes a little-endian byte string.
func fromLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
