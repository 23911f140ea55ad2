package cairo

import (
	"math/big"

	"lukechampine.com/uint128"
)

// U256Size is the number of tokens in a serialized U256.
const U256Size = 2

// U256 is a 256-bit integer split into two 128-bit halves:
// value = Low + High * 2^128.
type U256 struct {
	Low  uint128.Uint128
	High uint128.Uint128
}

// U256FromUint64 returns v as a U256.
func U256FromUint64(v uint64) U256 {
	return U256{Low: uint128.From64(v)}
}

// PackU256 splits n into halves. It fails with ErrOverflow when n >= 2^256
// and with ErrNegative when n < 0.
func PackU256(n *big.Int) (U256, error) {
	w, err := toWords("u256", n)
	if err != nil {
		return U256{}, err
	}
	return U256{
		Low:  uint128.New(w[0], w[1]),
		High: uint128.New(w[2], w[3]),
	}, nil
}

// Big returns the value as a big.Int.
func (u U256) Big() *big.Int {
	return fromWords([4]uint64{u.Low.Lo, u.Low.Hi, u.High.Lo, u.High.Hi})
}

func (u U256) IsZero() bool {
	return u.Low.IsZero() && u.High.IsZero()
}

// String formats the value in decimal.
func (u U256) String() string {
	return u.Big().String()
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(text []byte) error {
	n, err := parseDecimal("u256", text)
	if err != nil {
		return err
	}
	v, err := PackU256(n)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) Serialize(e *Encoder) {
	e.PutUint128(u.Low)
	e.PutUint128(u.High)
}

func (u *U256) Deserialize(d *Decoder) error {
	low, err := d.Uint128()
	if err != nil {
		return &DecodeError{Type: "u256", Field: "low", Err: err}
	}
	high, err := d.Uint128()
	if err != nil {
		return &DecodeError{Type: "u256", Field: "high", Err: err}
	}
	*u = U256{Low: low, High: high}
	return nil
}
