package fixture

import (
	"fmt"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

// Fixture is everything a renderer needs for one generated test.
type Fixture struct {
	Seed      uint64
	Curve     string
	Constants curves.Constants
	Raw       *Signature
	Signature *cairo.ECDSASignatureWithHint
	Felts     []cairo.Felt
}

// New builds the fixture for seed on curve.
func New(curve curves.Curve, seed uint64) (*Fixture, error) {
	raw := Sample(curve, seed)
	sig, err := raw.WithHints(curve)
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", seed, err)
	}
	return &Fixture{
		Seed:      seed,
		Curve:     curve.Name(),
		Constants: curve.Constants(),
		Raw:       raw,
		Signature: sig,
		Felts:     cairo.Serialize(sig),
	}, nil
}
