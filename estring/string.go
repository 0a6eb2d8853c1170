package estring

import (
	"unicode/utf16"

	"github.com/kbukum/dbkit/byteview"
	"github.com/kbukum/dbkit/errors"
)

// String is a Unicode text value stored as UTF-16 code units. Code points
// outside the basic multilingual plane occupy a surrogate pair. The zero
// value is the empty string.
//
// String is a plain value with no internal synchronization: concurrent
// mutation of the same instance requires external coordination.
type String struct {
	units []uint16
}

// FromUTF16 builds a String directly from wide code units. The units are
// copied as-is: wide-to-wide assignment involves no conversion and no
// validation.
func FromUTF16(units []uint16) String {
	if len(units) == 0 {
		return String{}
	}
	cp := make([]uint16, len(units))
	copy(cp, units)
	return String{units: cp}
}

// FromUTF8 decodes a UTF-8 byte sequence under the strict policy. The full
// Unicode range is supported; supplementary-plane code points become
// surrogate pairs in the wide form.
func FromUTF8(b []byte) (String, error) {
	return FromUTF8WithPolicy(b, Strict)
}

// FromUTF8WithPolicy decodes a UTF-8 byte sequence under the given policy.
func FromUTF8WithPolicy(b []byte, policy Policy) (String, error) {
	units, err := decodeUTF8(b, policy)
	if err != nil {
		return String{}, err
	}
	return String{units: units}, nil
}

// FromUTF8String decodes a Go string's bytes under the strict policy.
func FromUTF8String(s string) (String, error) {
	return FromUTF8(byteview.OfString(s).Bytes())
}

// FromView decodes a borrowed byte region under the strict policy.
func FromView(v byteview.View) (String, error) {
	return FromUTF8(v.Bytes())
}

// FromRunes builds a String from code points. Surrogate code points and
// values outside the Unicode range are rejected.
func FromRunes(rs []rune) (String, error) {
	units := make([]uint16, 0, len(rs))
	for i, r := range rs {
		if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r < 0xE000) {
			return String{}, errors.Errorf("invalid code point at index %d", i)
		}
		units = appendUnits(units, r)
	}
	return String{units: units}, nil
}

// UTF8 encodes the value as UTF-8 bytes under the strict policy. Conversion
// is explicit: an unpaired surrogate in the wide form is an error, never a
// silent substitution.
func (s String) UTF8() ([]byte, error) {
	return s.UTF8WithPolicy(Strict)
}

// UTF8WithPolicy encodes the value as UTF-8 bytes under the given policy.
func (s String) UTF8WithPolicy(policy Policy) ([]byte, error) {
	return encodeUTF8(s.units, policy)
}

// StdString encodes the value as a Go string under the strict policy.
func (s String) StdString() (string, error) {
	b, err := s.UTF8()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Runes returns the decoded code points under the strict policy.
func (s String) Runes() ([]rune, error) {
	if err := validateUnits(s.units); err != nil {
		return nil, err
	}
	return utf16.Decode(s.units), nil
}

// Units returns a copy of the wide code units. Never fails: the wide form is
// the native representation.
func (s String) Units() []uint16 {
	if len(s.units) == 0 {
		return nil
	}
	cp := make([]uint16, len(s.units))
	copy(cp, s.units)
	return cp
}

// Len returns the length in UTF-16 code units.
func (s String) Len() int { return len(s.units) }

// IsEmpty reports whether the value holds no code units.
func (s String) IsEmpty() bool { return len(s.units) == 0 }

// RuneCount returns the number of code points under the strict policy.
func (s String) RuneCount() (int, error) {
	rs, err := s.Runes()
	if err != nil {
		return 0, err
	}
	return len(rs), nil
}

// Equal reports whether two values hold the same code unit sequence.
func (s String) Equal(other String) bool {
	if len(s.units) != len(other.units) {
		return false
	}
	for i, u := range s.units {
		if other.units[i] != u {
			return false
		}
	}
	return true
}

// Append appends another value's code units.
func (s *String) Append(other String) {
	s.units = append(s.units, other.units...)
}

// AppendRune appends a single code point, rejecting surrogates and
// out-of-range values.
func (s *String) AppendRune(r rune) error {
	if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r < 0xE000) {
		return errors.Errorf("invalid code point %#U", r)
	}
	s.units = appendUnits(s.units, r)
	return nil
}

// Assign replaces the contents with a copy of the given wide code units.
func (s *String) Assign(units []uint16) {
	s.units = s.units[:0]
	s.units = append(s.units, units...)
}

// Reset empties the value, keeping its storage.
func (s *String) Reset() { s.units = s.units[:0] }

// String renders the UTF-8 form for display. fmt.Stringer cannot report
// failure, so rendering is lossy: unpaired surrogates become U+FFFD. Use
// UTF8 or StdString on any path where corruption must be detected.
func (s String) String() string {
	b, _ := encodeUTF8(s.units, Lossy)
	return string(b)
}
