// Command testgen writes a Cairo test module exercising the ECDSA verifier
// with a deterministic synthetic signature.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/pkg/testgen"
)

func main() {
	cfg := testgen.DefaultConfig()
	var verbose bool
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed for all sampled values")
	flag.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Output directory")
	flag.StringVar(&cfg.Curve, "curve", cfg.Curve, fmt.Sprintf("Curve %v", curves.Names()))
	flag.BoolVar(&cfg.EmitJSON, "json", false, "Also write the JSON test vector")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := log.NewLogger(os.Stderr, log.LevelOption(level))

	if err := run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "testgen:", describe(err))
		os.Exit(1)
	}
}

func run(cfg testgen.Config, logger log.Logger) error {
	g, err := testgen.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}
	paths, err := g.Write()
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// describe adds a hint for the failures a user can fix.
func describe(err error) string {
	switch {
	case errors.Is(err, testgen.ErrCreateDir):
		return fmt.Sprintf("%v\ncheck that the parent of -out-dir exists and is writable", err)
	case errors.Is(err, testgen.ErrWriteFile):
		return fmt.Sprintf("%v\ncheck permissions on -out-dir and that no directory shadows the file name", err)
	case errors.Is(err, testgen.ErrInvalidConfig):
		return fmt.Sprintf("%v\nrun with -h for usage", err)
	}
	return err.Error()
}
