package cairo

import (
	"fmt"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Marshaler is implemented by types with a felt serialization.
type Marshaler interface {
	Serialize(e *Encoder)
}

// Unmarshaler is implemented by types that can be read back from felts.
// Deserialize must leave the receiver untouched when it fails.
type Unmarshaler interface {
	Deserialize(d *Decoder) error
}

// Encoder appends tokens to a felt stream.
type Encoder struct {
	felts []Felt
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// PutUint64 appends a u64 token.
func (e *Encoder) PutUint64(v uint64) {
	e.felts = append(e.felts, *uint256.NewInt(v))
}

// PutUint128 appends a u128 token.
func (e *Encoder) PutUint128(v uint128.Uint128) {
	var f Felt
	f[0], f[1] = v.Lo, v.Hi
	e.felts = append(e.felts, f)
}

// PutBool appends 1 for true and 0 for false.
func (e *Encoder) PutBool(b bool) {
	if b {
		e.PutUint64(1)
		return
	}
	e.PutUint64(0)
}

// Felts returns the tokens written so far.
func (e *Encoder) Felts() []Felt {
	return e.felts
}

// Len returns the number of tokens written so far.
func (e *Encoder) Len() int {
	return len(e.felts)
}

// Decoder consumes tokens from a felt stream in order.
type Decoder struct {
	felts []Felt
	pos   int
}

// NewDecoder returns a decoder reading felts from the start.
func NewDecoder(felts []Felt) *Decoder {
	return &Decoder{felts: felts}
}

// Remaining returns the number of unread tokens.
func (d *Decoder) Remaining() int {
	return len(d.felts) - d.pos
}

func (d *Decoder) peek() (*Felt, error) {
	if d.pos >= len(d.felts) {
		return nil, ErrTruncatedInput
	}
	return &d.felts[d.pos], nil
}

// Uint64 reads a u64 token.
func (d *Decoder) Uint64() (uint64, error) {
	f, err := d.peek()
	if err != nil {
		return 0, err
	}
	if !f.IsUint64() {
		return 0, fmt.Errorf("%w: token %d does not fit u64", ErrOverflow, d.pos)
	}
	d.pos++
	return f.Uint64(), nil
}

// Uint128 reads a u128 token.
func (d *Decoder) Uint128() (uint128.Uint128, error) {
	f, err := d.peek()
	if err != nil {
		return uint128.Zero, err
	}
	if f[2] != 0 || f[3] != 0 {
		return uint128.Zero, fmt.Errorf("%w: token %d does not fit u128", ErrOverflow, d.pos)
	}
	d.pos++
	return uint128.New(f[0], f[1]), nil
}

// Bool reads a token that must be 0 or 1.
func (d *Decoder) Bool() (bool, error) {
	f, err := d.peek()
	if err != nil {
		return false, err
	}
	if !f.IsUint64() || f.Uint64() > 1 {
		return false, fmt.Errorf("%w: token %d", ErrInvalidBool, d.pos)
	}
	d.pos++
	return f.Uint64() == 1, nil
}

// Serialize flattens v into tokens.
func Serialize(v Marshaler) []Felt {
	e := NewEncoder()
	v.Serialize(e)
	return e.Felts()
}

// Deserialize reads v from the front of felts. Tokens left over after v is
// complete are ignored.
func Deserialize(felts []Felt, v Unmarshaler) error {
	return v.Deserialize(NewDecoder(felts))
}

// DeserializeExact is Deserialize but fails with ErrTrailingInput when
// tokens are left over. v is not modified on failure.
func DeserializeExact[T any, PT interface {
	*T
	Unmarshaler
}](felts []Felt, v PT) error {
	var tmp T
	d := NewDecoder(felts)
	if err := PT(&tmp).Deserialize(d); err != nil {
		return err
	}
	if n := d.Remaining(); n != 0 {
		return fmt.Errorf("%w: %d tokens", ErrTrailingInput, n)
	}
	*v = tmp
	return nil
}
