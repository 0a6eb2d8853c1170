package estring

import "github.com/kbukum/dbkit/errors"

// Policy selects how conversions treat invalid input.
type Policy int

const (
	// Strict makes conversions fail on malformed input or unpaired
	// surrogates. This is the default everywhere.
	Strict Policy = iota
	// Lossy substitutes U+FFFD for invalid input instead of failing.
	Lossy
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lossy:
		return "lossy"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as used in configuration.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "lossy":
		return Lossy, nil
	default:
		return Strict, errors.Errorf("unknown conversion policy %q", s)
	}
}
