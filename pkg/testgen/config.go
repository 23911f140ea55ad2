package testgen

import (
	"fmt"
	"strings"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
)

// Config selects what Generator produces and where it writes it.
type Config struct {
	Seed     uint64 // base seed; every sampled value is derived from it
	OutDir   string // directory for generated files, created if missing
	Curve    string // curve name accepted by curves.ByName
	EmitJSON bool   // also write the JSON vector next to the Cairo file
}

// DefaultConfig returns seed 0, output directory "tests" and Ed25519.
func DefaultConfig() Config {
	return Config{
		Seed:   0,
		OutDir: "tests",
		Curve:  "ed25519",
	}
}

// Validate checks that the curve is known and an output directory is set.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if _, err := curves.ByName(c.Curve); err != nil {
		return fmt.Errorf("%w: %w (known: %s)", ErrInvalidConfig, err, strings.Join(curves.Names(), ", "))
	}
	return nil
}
