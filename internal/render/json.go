package render

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"

	"github.com/smallyu/ecdsa-fixtures/internal/fixture"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

// VectorVersion is the current layout of Vector.
const VectorVersion = 1

// Errors returned by the renderers and ParseJSON.
var (
	ErrNilFixture     = errors.New("render: nil fixture")
	ErrVectorVersion  = errors.New("render: unsupported vector version")
	ErrDigestMismatch = errors.New("render: token digest mismatch")
	ErrValueMismatch  = errors.New("render: values disagree with tokens")
)

// Vector is the JSON form of a fixture.
type Vector struct {
	Version      int      `json:"version"`
	Seed         uint64   `json:"seed"`
	Curve        string   `json:"curve"`
	CurveID      uint     `json:"curve_id"`
	Values       Values   `json:"values"`
	Tokens       []string `json:"tokens"`
	TokensSHA256 string   `json:"tokens_sha256"`
}

// Values holds every field of the record as a decimal string.
type Values struct {
	RX      cairo.U384 `json:"rx"`
	S       cairo.U256 `json:"s"`
	V       bool       `json:"v"`
	PX      cairo.U384 `json:"px"`
	PY      cairo.U384 `json:"py"`
	Z       cairo.U256 `json:"z"`
	MSMX    cairo.U384 `json:"msm_hint_x"`
	MSMY    cairo.U384 `json:"msm_hint_y"`
	DeriveY cairo.U384 `json:"derive_hint_y"`
}

func valuesOf(s *cairo.ECDSASignatureWithHint) Values {
	return Values{
		RX:      s.Signature.RX,
		S:       s.Signature.S,
		V:       s.Signature.V,
		PX:      s.Signature.PX,
		PY:      s.Signature.PY,
		Z:       s.Signature.Z,
		MSMX:    s.MSMHint.Result.X,
		MSMY:    s.MSMHint.Result.Y,
		DeriveY: s.DeriveHint.Y,
	}
}

// Digest hashes the token stream, each token as 32 big-endian bytes.
func Digest(felts []cairo.Felt) string {
	h := sha256.New()
	for i := range felts {
		b := felts[i].Bytes32()
		h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// JSON renders f as an indented vector document.
func JSON(f *fixture.Fixture) ([]byte, error) {
	if f == nil || f.Signature == nil {
		return nil, ErrNilFixture
	}
	v := Vector{
		Version:      VectorVersion,
		Seed:         f.Seed,
		Curve:        f.Curve,
		CurveID:      f.Constants.CurveID,
		Values:       valuesOf(f.Signature),
		Tokens:       cairo.FeltStrings(f.Felts),
		TokensSHA256: Digest(f.Felts),
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// ParseJSON decodes a vector, checks its digest and decodes the token stream.
// The decoded record must agree with the document's values.
func ParseJSON(data []byte) (*Vector, *cairo.ECDSASignatureWithHint, error) {
	var v Vector
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, nil, fmt.Errorf("render: parse vector: %w", err)
	}
	if v.Version != VectorVersion {
		return nil, nil, fmt.Errorf("%w: %d", ErrVectorVersion, v.Version)
	}

	felts, err := cairo.ParseFelts(v.Tokens)
	if err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}
	if got := Digest(felts); got != v.TokensSHA256 {
		return nil, nil, fmt.Errorf("%w: got %s, want %s", ErrDigestMismatch, got, v.TokensSHA256)
	}

	var sig cairo.ECDSASignatureWithHint
	if err := cairo.DeserializeExact(felts, &sig); err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}
	if valuesOf(&sig) != v.Values {
		return nil, nil, ErrValueMismatch
	}
	return &v, &sig, nil
}
