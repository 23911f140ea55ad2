// Package cairo implements the felt wire format consumed by Cairo verifiers.
//
// Integers are packed into fixed-width little-endian limb types (U256 as two
// 128-bit halves, U384 as four 64-bit limbs). Records are flattened into a
// sequence of Felt tokens by concatenating their fields in declaration order,
// with no length prefixes or type tags:
//
//	sig := cairo.ECDSASignatureWithHint{...}
//	felts := cairo.Serialize(sig)
//
//	var out cairo.ECDSASignatureWithHint
//	if err := cairo.Deserialize(felts, &out); err != nil {
//		// errors.Is(err, cairo.ErrTruncatedInput) for short streams
//	}
//
// Packing never truncates: values of 2^256 or more fail with ErrOverflow.
package cairo
