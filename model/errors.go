package model

import (
	"errors"
	"fmt"
)

// ErrGradeParsing is returned when a string cannot be parsed into a Grade.
var ErrGradeParsing = errors.New("error while parsing Grade")

// ModParsingError is returned when neither a mod bitset nor a mod
// abbreviation list could be parsed into GameMods.
type ModParsingError struct {
	// Bits is set when parsing from a u32 failed.
	Bits *uint32
	// Str is set when parsing from a string failed.
	Str string
}

func (e *ModParsingError) Error() string {
	if e.Bits != nil {
		return fmt.Sprintf("can not parse u32 `%d` into GameMods", *e.Bits)
	}
	return fmt.Sprintf("can not parse %q into GameMods", e.Str)
}

// ApprovalStatusParsingError is returned for approval status codes outside
// the documented -2..=4 range.
type ApprovalStatusParsingError struct {
	Code int
}

func (e *ApprovalStatusParsingError) Error() string {
	return fmt.Sprintf("could not parse `%d` into ApprovalStatus", e.Code)
}
