package cairo

// Token counts of the serialized records.
const (
	G1PointSize                = 2 * U384Size
	DerivePointFromXHintSize   = U384Size
	MSMHintSize                = G1PointSize
	ECDSASignatureSize         = U384Size + U256Size + 1 + 2*U384Size + U256Size
	ECDSASignatureWithHintSize = ECDSASignatureSize + MSMHintSize + DerivePointFromXHintSize
)

// G1Point is an affine point in wire form. The point at infinity is the
// zero value.
type G1Point struct {
	X U384
	Y U384
}

// IsInfinity reports whether p is the (0, 0) infinity encoding.
func (p G1Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Serialize writes x then y, 8 tokens.
func (p G1Point) Serialize(e *Encoder) {
	p.X.Serialize(e)
	p.Y.Serialize(e)
}

// Deserialize reads x then y. p is left untouched on failure.
func (p *G1Point) Deserialize(d *Decoder) error {
	var out G1Point
	if err := decodeField(d, "G1Point", "x", &out.X); err != nil {
		return err
	}
	if err := decodeField(d, "G1Point", "y", &out.Y); err != nil {
		return err
	}
	*p = out
	return nil
}

// DerivePointFromXHint carries the y-coordinate matching a signature's rx so
// the verifier can skip a square root.
type DerivePointFromXHint struct {
	Y U384
}

// Serialize writes y, 4 tokens.
func (h DerivePointFromXHint) Serialize(e *Encoder) {
	h.Y.Serialize(e)
}

// Deserialize reads y. h is left untouched on failure.
func (h *DerivePointFromXHint) Deserialize(d *Decoder) error {
	var out DerivePointFromXHint
	if err := decodeField(d, "DerivePointFromXHint", "y", &out.Y); err != nil {
		return err
	}
	*h = out
	return nil
}

// MSMHint carries the precomputed result of the verifier's multi-scalar
// multiplication.
type MSMHint struct {
	Result G1Point
}

// Serialize writes the result point, 8 tokens.
func (h MSMHint) Serialize(e *Encoder) {
	h.Result.Serialize(e)
}

// Deserialize reads the result point. h is left untouched on failure.
func (h *MSMHint) Deserialize(d *Decoder) error {
	var out MSMHint
	if err := decodeField(d, "MSMHint", "result", &out.Result); err != nil {
		return err
	}
	*h = out
	return nil
}

// ECDSASignature is a signature together with the public key and message
// digest it claims to cover.
type ECDSASignature struct {
	RX U384 // x-coordinate of R
	S  U256
	V  bool // parity of R's y-coordinate
	PX U384 // public key
	PY U384
	Z  U256 // message digest
}

// Serialize flattens the fields in declaration order: rx, s, v, px, py, z
// (17 tokens).
func (s ECDSASignature) Serialize(e *Encoder) {
	s.RX.Serialize(e)
	s.S.Serialize(e)
	e.PutBool(s.V)
	s.PX.Serialize(e)
	s.PY.Serialize(e)
	s.Z.Serialize(e)
}

// Deserialize reads the fields in declaration order. v must be 0 or 1.
// s is left untouched on failure.
func (s *ECDSASignature) Deserialize(d *Decoder) error {
	const typ = "ECDSASignature"
	var out ECDSASignature
	if err := decodeField(d, typ, "rx", &out.RX); err != nil {
		return err
	}
	if err := decodeField(d, typ, "s", &out.S); err != nil {
		return err
	}
	v, err := d.Bool()
	if err != nil {
		return &DecodeError{Type: typ, Field: "v", Err: err}
	}
	out.V = v
	if err := decodeField(d, typ, "px", &out.PX); err != nil {
		return err
	}
	if err := decodeField(d, typ, "py", &out.PY); err != nil {
		return err
	}
	if err := decodeField(d, typ, "z", &out.Z); err != nil {
		return err
	}
	*s = out
	return nil
}

// ECDSASignatureWithHint is the record a fixture embeds: a signature plus the
// hints the verifier expects alongside it.
type ECDSASignatureWithHint struct {
	Signature  ECDSASignature
	MSMHint    MSMHint
	DeriveHint DerivePointFromXHint
}

// Serialize writes the signature, the MSM hint and the derive hint, 29
// tokens in total.
func (s ECDSASignatureWithHint) Serialize(e *Encoder) {
	s.Signature.Serialize(e)
	s.MSMHint.Serialize(e)
	s.DeriveHint.Serialize(e)
}

// Deserialize reads a full record. On failure it returns a *DecodeError
// chain naming the failing field and leaves s untouched; tokens after the
// record are not consumed.
func (s *ECDSASignatureWithHint) Deserialize(d *Decoder) error {
	const typ = "ECDSASignatureWithHint"
	var out ECDSASignatureWithHint
	if err := decodeField(d, typ, "signature", &out.Signature); err != nil {
		return err
	}
	if err := decodeField(d, typ, "msm_hint", &out.MSMHint); err != nil {
		return err
	}
	if err := decodeField(d, typ, "msm_derive_hint", &out.DeriveHint); err != nil {
		return err
	}
	*s = out
	return nil
}
