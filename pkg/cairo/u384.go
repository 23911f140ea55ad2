package cairo

import (
	"fmt"
	"math/big"
)

// U384Size is the number of tokens in a serialized U384.
const U384Size = 4

// U384 is a four-limb integer: value = sum(limb_i * 2^(64*i)).
//
// Coordinates of the supported curves fit in 256 bits, so the four 64-bit
// limbs cover every value this package produces.
type U384 struct {
	Limb0 uint64
	Limb1 uint64
	Limb2 uint64
	Limb3 uint64
}

// U384FromUint64 returns v as a U384.
func U384FromUint64(v uint64) U384 {
	return U384{Limb0: v}
}

// PackU384 splits n into limbs. It fails with ErrOverflow when n >= 2^256
// and with ErrNegative when n < 0.
func PackU384(n *big.Int) (U384, error) {
	w, err := toWords("u384", n)
	if err != nil {
		return U384{}, err
	}
	return U384{Limb0: w[0], Limb1: w[1], Limb2: w[2], Limb3: w[3]}, nil
}

// Big returns the value as a big.Int.
func (u U384) Big() *big.Int {
	return fromWords([4]uint64{u.Limb0, u.Limb1, u.Limb2, u.Limb3})
}

// IsZero reports whether every limb is zero.
func (u U384) IsZero() bool {
	return u.Limb0 == 0 && u.Limb1 == 0 && u.Limb2 == 0 && u.Limb3 == 0
}

// String formats the value in decimal.
func (u U384) String() string {
	return u.Big().String()
}

func (u U384) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U384) UnmarshalText(text []byte) error {
	n, err := parseDecimal("u384", text)
	if err != nil {
		return err
	}
	v, err := PackU384(n)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U384) Serialize(e *Encoder) {
	e.PutUint64(u.Limb0)
	e.PutUint64(u.Limb1)
	e.PutUint64(u.Limb2)
	e.PutUint64(u.Limb3)
}

func (u *U384) Deserialize(d *Decoder) error {
	var limbs [4]uint64
	for i := range limbs {
		v, err := d.Uint64()
		if err != nil {
			return &DecodeError{Type: "u384", Field: fmt.Sprintf("limb%d", i), Err: err}
		}
		limbs[i] = v
	}
	*u = U384{Limb0: limbs[0], Limb1: limbs[1], Limb2: limbs[2], Limb3: limbs[3]}
	return nil
}
