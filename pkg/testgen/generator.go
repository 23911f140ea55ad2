// Package testgen generates Cairo test files exercising the ECDSA verifier
// with deterministic synthetic signatures.
package testgen

import (
	"os"
	"path/filepath"

	"cosmossdk.io/log"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/internal/fixture"
	"github.com/smallyu/ecdsa-fixtures/internal/render"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

// BuildSignatureFixture returns the Ed25519 signature with hints for seed.
// It is pure: equal seeds give equal records.
func BuildSignatureFixture(seed uint64) (*cairo.ECDSASignatureWithHint, error) {
	return fixture.Build(curves.NewEd25519(), seed)
}

// Generator renders and writes the fixture described by a Config.
type Generator struct {
	cfg    Config
	curve  curves.Curve
	logger log.Logger
}

// NewGenerator validates cfg. A nil logger discards output.
func NewGenerator(cfg Config, logger log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	curve, err := curves.ByName(cfg.Curve)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Generator{
		cfg:    cfg,
		curve:  curve,
		logger: logger.With("module", "testgen", "curve", curve.Name()),
	}, nil
}

// Fixture builds the fixture for the configured seed.
func (g *Generator) Fixture() (*fixture.Fixture, error) {
	f, err := fixture.New(g.curve, g.cfg.Seed)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("built fixture", "seed", f.Seed, "tokens", len(f.Felts))
	return f, nil
}

// Output is one rendered file.
type Output struct {
	Name string
	Data []byte
}

// Render produces the Cairo test module and, if enabled, the JSON vector.
func (g *Generator) Render() ([]Output, error) {
	f, err := g.Fixture()
	if err != nil {
		return nil, err
	}

	code, err := render.Cairo(f)
	if err != nil {
		return nil, err
	}
	out := []Output{{Name: render.FileName(f.Curve), Data: []byte(code)}}

	if g.cfg.EmitJSON {
		vec, err := render.JSON(f)
		if err != nil {
			return nil, err
		}
		out = append(out, Output{Name: render.VectorFileName(f.Curve), Data: vec})
	}
	return out, nil
}

// Write renders the outputs and writes them under OutDir, creating it if
// needed. It returns the written paths.
func (g *Generator) Write() ([]string, error) {
	outputs, err := g.Render()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		g.logger.Error("create output directory", "path", g.cfg.OutDir, "err", err)
		return nil, newFileError(ErrCreateDir, g.cfg.OutDir, err)
	}

	paths := make([]string, 0, len(outputs))
	for _, o := range outputs {
		path := filepath.Join(g.cfg.OutDir, o.Name)
		if err := os.WriteFile(path, o.Data, 0o644); err != nil {
			g.logger.Error("write output file", "path", path, "err", err)
			return paths, newFileError(ErrWriteFile, path, err)
		}
		g.logger.Info("wrote file", "path", path, "bytes", len(o.Data))
		paths = append(paths, path)
	}
	return paths, nil
}
