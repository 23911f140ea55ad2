package cairo

import (
	"errors"
	"fmt"
)

// Common errors returned by the codec
var (
	ErrOverflow       = errors.New("cairo: value overflows fixed-width type")
	ErrNegative       = errors.New("cairo: negative value")
	ErrTruncatedInput = errors.New("cairo: truncated input")
	ErrTrailingInput  = errors.New("cairo: trailing input")
	ErrInvalidBool    = errors.New("cairo: invalid bool token")
	ErrFeltRange      = errors.New("cairo: value is not a felt")
)

// DecodeError reports which field of which type failed to decode.
// Nested records produce a chain of DecodeErrors ending in a sentinel.
type DecodeError struct {
	Type  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeField decodes one member of a record, tagging failures.
func decodeField(d *Decoder, typ, field string, v Unmarshaler) error {
	if err := v.Deserialize(d); err != nil {
		return &DecodeError{Type: typ, Field: field, Err: err}
	}
	return nil
}
