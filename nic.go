package nic

import (
	"fmt"

	"github.com/lankaid/nic/automaton"
	"github.com/lankaid/nic/sanitize"
)

// Format identifies the recognized layout. It aliases the automaton package's
// type so simple callers never need to import the machine directly.
type Format = automaton.Format

// Format values, aliased from the automaton package.
const (
	FormatNone = automaton.FormatNone
	FormatOld  = automaton.FormatOld
	FormatNew  = automaton.FormatNew
)

// Normalize applies the sanctioned pre-processing pipeline: trim surrounding
// whitespace, fold width variants to ASCII, uppercase. Validate and Parse
// call it internally, so explicit use is only needed when feeding the
// automaton package directly.
func Normalize(s string) string {
	return sanitize.Normalize(s)
}

// Validate normalizes the input and runs the recognizer over it. Rejection
// is a classification outcome, not an error: inspect Result.Accepted, and
// Result.Trace when you need to see where recognition died.
func Validate(s string) automaton.Result {
	return automaton.Run(sanitize.Normalize(s))
}

// IsValid reports whether the input is lexically a NIC number after
// normalization. It decides nothing about the semantic tier; day-segment
// checks happen in Parse and Decode.
func IsValid(s string) bool {
	return Validate(s).Accepted
}

// Parse validates and decodes in one step. It returns ErrNotAccepted when
// recognition fails, and the decoder's sentinel errors for inputs that are
// lexically fine but semantically broken.
func Parse(s string) (*Record, error) {
	norm := sanitize.Normalize(s)
	res := automaton.Run(norm)
	if !res.Accepted {
		return nil, fmt.Errorf("%w: final state %s", ErrNotAccepted, res.Final)
	}
	return Decode(norm, res.Format)
}
