package curves

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point or the point at infinity.
//
// The zero value is the point at infinity. Infinity is a tag, not a pair of
// coordinates: X and Y report zero for it only because that is how the wire
// format projects it.
type Point struct {
	x, y   *big.Int
	affine bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
// NewPoint does not check that the point lies on any curve.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		affine: true,
	}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.affine
}

// X returns a copy of the affine x-coordinate, or zero for infinity.
func (p Point) X() *big.Int {
	if !p.affine {
		return new(big.Int)
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the affine y-coordinate, or zero for infinity.
func (p Point) Y() *big.Int {
	if !p.affine {
		return new(big.Int)
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if !p.affine {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
