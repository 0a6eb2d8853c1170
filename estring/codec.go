package estring

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/kbukum/dbkit/errors"
)

const replacementChar = '�'

// decodeUTF8 decodes b into UTF-16 code units. Under Strict, the first
// malformed byte sequence aborts with the uniform error kind; under Lossy it
// becomes U+FFFD.
func decodeUTF8(b []byte, policy Policy) ([]uint16, error) {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			if policy == Strict {
				return nil, errors.Errorf("invalid utf-8 byte sequence at offset %d", i)
			}
			r = replacementChar
			size = 1
		}
		units = appendUnits(units, r)
		i += size
	}
	return units, nil
}

// encodeUTF8 encodes UTF-16 code units as UTF-8 bytes. Under Strict an
// unpaired surrogate aborts with the uniform error kind; under Lossy it
// becomes U+FFFD.
func encodeUTF8(units []uint16, policy Policy) ([]byte, error) {
	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case !isSurrogate(u):
			out = utf8.AppendRune(out, rune(u))
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			out = utf8.AppendRune(out, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		default:
			if policy == Strict {
				return nil, errors.Errorf("unpaired surrogate 0x%04X at code unit %d", u, i)
			}
			out = utf8.AppendRune(out, replacementChar)
		}
	}
	return out, nil
}

// appendUnits appends the UTF-16 encoding of a valid code point.
func appendUnits(units []uint16, r rune) []uint16 {
	if r < 0x10000 {
		return append(units, uint16(r))
	}
	hi, lo := utf16.EncodeRune(r)
	return append(units, uint16(hi), uint16(lo))
}

// validateUnits checks that every surrogate in the sequence is part of a
// well-formed high/low pair.
func validateUnits(units []uint16) error {
	for i := 0; i < len(units); i++ {
		u := units[i]
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			i++
			continue
		}
		if isSurrogate(u) {
			return errors.Errorf("unpaired surrogate 0x%04X at code unit %d", u, i)
		}
	}
	return nil
}

// sanitizeUnits replaces unpaired surrogates with U+FFFD in place.
func sanitizeUnits(units []uint16) []uint16 {
	for i := 0; i < len(units); i++ {
		u := units[i]
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			i++
			continue
		}
		if isSurrogate(u) {
			units[i] = uint16(replacementChar)
		}
	}
	return units
}

func isSurrogate(u uint16) bool     { return u >= 0xD800 && u < 0xE000 }
func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }
func isLowSurrogate(u uint16) bool  { return u >= 0xDC00 && u < 0xE000 }
