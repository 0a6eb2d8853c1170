package estring

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/kbukum/dbkit/errors"
)

// Charset names a MySQL character set usable for transcoding. The names
// follow MySQL's conventions, including its quirks: "latin1" is actually
// Windows-1252 on a MySQL server, and "ucs2" is big-endian UTF-16 without a
// byte order mark.
type Charset string

const (
	CharsetUTF8MB4 Charset = "utf8mb4"
	CharsetUTF8    Charset = "utf8"
	CharsetLatin1  Charset = "latin1"
	CharsetLatin2  Charset = "latin2"
	CharsetCP1251  Charset = "cp1251"
	CharsetGreek   Charset = "greek"
	CharsetHebrew  Charset = "hebrew"
	CharsetASCII   Charset = "ascii"
	CharsetUCS2    Charset = "ucs2"
)

// charmaps holds the single-byte charsets served by x/text.
var charmaps = map[Charset]*charmap.Charmap{
	CharsetLatin1: charmap.Windows1252,
	CharsetLatin2: charmap.ISO8859_2,
	CharsetCP1251: charmap.Windows1251,
	CharsetGreek:  charmap.ISO8859_7,
	CharsetHebrew: charmap.ISO8859_8,
}

// Valid reports whether the charset is supported.
func (cs Charset) Valid() bool {
	switch cs {
	case CharsetUTF8MB4, CharsetUTF8, CharsetASCII, CharsetUCS2:
		return true
	}
	_, ok := charmaps[cs]
	return ok
}

// Decode transcodes bytes in the given charset into a String under the
// strict policy.
func Decode(b []byte, cs Charset) (String, error) {
	return DecodeWithPolicy(b, cs, Strict)
}

// DecodeWithPolicy transcodes bytes in the given charset under the given
// policy. Unknown charsets fail regardless of policy.
func DecodeWithPolicy(b []byte, cs Charset, policy Policy) (String, error) {
	switch cs {
	case CharsetUTF8, CharsetUTF8MB4:
		return FromUTF8WithPolicy(b, policy)
	case CharsetASCII:
		return decodeASCII(b, policy)
	case CharsetUCS2:
		return decodeUCS2(b, policy)
	}
	cm, ok := charmaps[cs]
	if !ok {
		return String{}, errors.Errorf("unknown character set %q", cs)
	}
	// Single-byte decodes are total: every byte maps to some code point.
	u8, err := cm.NewDecoder().Bytes(b)
	if err != nil {
		return String{}, errors.Wrap(err)
	}
	return FromUTF8WithPolicy(u8, policy)
}

// Encode transcodes the value into the given charset under the strict
// policy: runes the charset cannot represent are an error.
func (s String) Encode(cs Charset) ([]byte, error) {
	return s.EncodeWithPolicy(cs, Strict)
}

// EncodeWithPolicy transcodes the value into the given charset under the
// given policy. Under Lossy, unrepresentable runes become the charset's
// substitution byte.
func (s String) EncodeWithPolicy(cs Charset, policy Policy) ([]byte, error) {
	switch cs {
	case CharsetUTF8, CharsetUTF8MB4:
		return s.UTF8WithPolicy(policy)
	case CharsetASCII:
		return s.encodeASCII(policy)
	case CharsetUCS2:
		return s.encodeUCS2(policy)
	}
	cm, ok := charmaps[cs]
	if !ok {
		return nil, errors.Errorf("unknown character set %q", cs)
	}
	u8, err := s.UTF8WithPolicy(policy)
	if err != nil {
		return nil, err
	}
	enc := cm.NewEncoder()
	if policy == Lossy {
		enc = encoding.ReplaceUnsupported(enc)
	}
	out, err := enc.Bytes(u8)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return out, nil
}

func decodeASCII(b []byte, policy Policy) (String, error) {
	units := make([]uint16, len(b))
	for i, c := range b {
		if c >= 0x80 {
			if policy == Strict {
				return String{}, errors.Errorf("non-ascii byte 0x%02X at offset %d", c, i)
			}
			units[i] = uint16(replacementChar)
			continue
		}
		units[i] = uint16(c)
	}
	return String{units: units}, nil
}

func (s String) encodeASCII(policy Policy) ([]byte, error) {
	rs, err := s.decodeRunes(policy)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(rs))
	for i, r := range rs {
		if r >= 0x80 {
			if policy == Strict {
				return nil, errors.Errorf("code point %#U not representable in ascii", r)
			}
			r = '?'
		}
		out[i] = byte(r)
	}
	return out, nil
}

// decodeUCS2 parses big-endian UTF-16 bytes straight into the wide form.
func decodeUCS2(b []byte, policy Policy) (String, error) {
	if len(b)%2 != 0 {
		if policy == Strict {
			return String{}, errors.Errorf("ucs2 input has odd length %d", len(b))
		}
		b = b[:len(b)-1]
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	if policy == Strict {
		if err := validateUnits(units); err != nil {
			return String{}, err
		}
	} else {
		units = sanitizeUnits(units)
	}
	return String{units: units}, nil
}

func (s String) encodeUCS2(policy Policy) ([]byte, error) {
	units := s.units
	if policy == Strict {
		if err := validateUnits(units); err != nil {
			return nil, err
		}
	} else {
		units = sanitizeUnits(s.Units())
	}
	out := make([]byte, 2*len(units))
	for i, u := range units {
		out[2*i] = byte(u >> 8)
		out[2*i+1] = byte(u)
	}
	return out, nil
}

func (s String) decodeRunes(policy Policy) ([]rune, error) {
	if policy == Strict {
		return s.Runes()
	}
	u8, err := s.UTF8WithPolicy(Lossy)
	if err != nil {
		return nil, err
	}
	return []rune(string(u8)), nil
}
