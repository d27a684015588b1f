package lencode

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy selects how each integer becomes a codeword.
type Policy uint8

const (
	// Minimal writes every integer at its own shortest binary width.
	Minimal Policy = iota
	// Fixed writes every integer at the width of the largest one.
	Fixed
	// LenCoded groups integers into length classes and writes each one
	// relative to its class offset. The output is only decodable when
	// the exact count or sequence is known.
	LenCoded
)

func (p Policy) String() string {
	switch p {
	case Minimal:
		return "minimal"
	case Fixed:
		return "fixed"
	case LenCoded:
		return "lencoded"
	}
	return "unknown"
}

func (p Policy) validate() error {
	if LenCoded < p {
		return errors.Wrapf(ErrUnknownPolicy, "policy %d", uint8(p))
	}
	return nil
}

// PolicyFromFlags maps the fixed-length and lencode switches onto a
// Policy. Both switches together cannot give a decodable stream.
func PolicyFromFlags(fixed, lencode bool) (Policy, error) {
	switch {
	case fixed && lencode:
		return Minimal, errors.WithStack(ErrPolicyConflict)
	case fixed:
		return Fixed, nil
	case lencode:
		return LenCoded, nil
	}
	return Minimal, nil
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "minimal":
		return Minimal, nil
	case "fixed":
		return Fixed, nil
	case "lencoded", "lencode":
		return LenCoded, nil
	}
	return Minimal, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}
