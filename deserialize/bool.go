package deserialize

import (
	"bytes"
	"fmt"
)

// Bool accepts a bool, the strings "true"/"false", 0 or 1 as number or
// string, or null.
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*b = false
		return nil
	}
	s := string(data)
	if unquoted, ok := unquote(data); ok {
		s = unquoted
	}
	switch s {
	case "true", "1":
		*b = true
	case "false", "0", "":
		*b = false
	default:
		return fmt.Errorf("deserialize: %q is not a bool", data)
	}
	return nil
}
