//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/smallyu/ecdsa-fixtures/internal/crypto/curves"
	"github.com/smallyu/ecdsa-fixtures/internal/fixture"
	"github.com/smallyu/ecdsa-fixtures/internal/render"
	"github.com/smallyu/ecdsa-fixtures/pkg/cairo"
)

func main() {
	c := make(chan struct{})

	fmt.Println("ecdsa-fixtures WASM initialized")

	js.Global().Set("ECDSAFixtures", map[string]interface{}{
		"Vector":      js.FuncOf(Vector),
		"Cairo":       js.FuncOf(Cairo),
		"Deserialize": js.FuncOf(Deserialize),
	})

	<-c
}

// fixtureFromArgs reads (seed, curve). The seed is a decimal string since JS
// numbers cannot hold every uint64.
func fixtureFromArgs(args []js.Value) (*fixture.Fixture, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments (seed, curve)")
	}
	seed, err := strconv.ParseUint(args[0].String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %v", err)
	}
	curve, err := curves.ByName(args[1].String())
	if err != nil {
		return nil, err
	}
	return fixture.New(curve, seed)
}

// Vector returns the JSON test vector for (seed, curve).
func Vector(this js.Value, args []js.Value) interface{} {
	f, err := fixtureFromArgs(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	out, err := render.JSON(f)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(out)
}

// Cairo returns the Cairo test module for (seed, curve).
func Cairo(this js.Value, args []js.Value) interface{} {
	f, err := fixtureFromArgs(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	out, err := render.Cairo(f)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// Deserialize decodes a JSON array of decimal tokens into the record and
// returns its values as JSON.
func Deserialize(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonTokens)"
	}
	var tokens []string
	if err := json.Unmarshal([]byte(args[0].String()), &tokens); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	felts, err := cairo.ParseFelts(tokens)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var sig cairo.ECDSASignatureWithHint
	if err := cairo.DeserializeExact(felts, &sig); err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	resp := map[string]interface{}{
		"rx":            sig.Signature.RX,
		"s":             sig.Signature.S,
		"v":             sig.Signature.V,
		"px":            sig.Signature.PX,
		"py":            sig.Signature.PY,
		"z":             sig.Signature.Z,
		"msm_hint_x":    sig.MSMHint.Result.X,
		"msm_hint_y":    sig.MSMHint.Result.Y,
		"derive_hint_y": sig.DeriveHint.Y,
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}
