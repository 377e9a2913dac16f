// Package deserialize contains the field coercers for the loosely typed
// JSON the osu! v1 api emits. Numbers arrive as native numbers or decimal
// strings, bools as bools, "true"/"false", 0/1, and dates as
// "YYYY-MM-DD HH:MM:SS" strings. Every coercer accepts null as absent.
package deserialize

import (
	"bytes"
	"fmt"
	"strconv"
)

var nullLiteral = []byte("null")

// U32 accepts a number, a decimal string, or null. Null and the empty
// string coerce to 0, negative values are clamped to 0.
type U32 uint32

func (u *U32) UnmarshalJSON(data []byte) error {
	n, err := parseInt(data, "u32")
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	*u = U32(n)
	return nil
}

// U64 accepts a number, a decimal string, or null.
type U64 uint64

func (u *U64) UnmarshalJSON(data []byte) error {
	n, err := parseInt(data, "u64")
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	*u = U64(n)
	return nil
}

// F32 accepts a number, a decimal string, or null.
type F32 float32

func (f *F32) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*f = 0
		return nil
	}
	s := string(data)
	if unquoted, ok := unquote(data); ok {
		if unquoted == "" {
			*f = 0
			return nil
		}
		s = unquoted
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("deserialize: %q is not an f32: %w", data, err)
	}
	*f = F32(v)
	return nil
}

func parseInt(data []byte, want string) (int64, error) {
	if bytes.Equal(data, nullLiteral) {
		return 0, nil
	}
	s := string(data)
	if unquoted, ok := unquote(data); ok {
		if unquoted == "" {
			return 0, nil
		}
		s = unquoted
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("deserialize: %q is not a %s: %w", data, want, err)
	}
	return n, nil
}

func unquote(data []byte) (string, bool) {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return string(data[1 : len(data)-1]), true
	}
	return "", false
}
