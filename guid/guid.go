package guid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Size is the identifier capacity in bytes.
const Size = 32

// GUID is a globally unique identifier held in a fixed 32-byte printable
// buffer. The zero value is the all-zero identifier. Being an array type,
// GUID compares byte-wise with == and copies by value.
type GUID [Size]byte

// New returns a freshly generated identifier. A random UUID rendered as 32
// hex digits fills the buffer exactly. uuid.New is safe for concurrent use,
// so New is too.
func New() GUID {
	var g GUID
	u := uuid.New()
	hex.Encode(g[:], u[:])
	return g
}

// FromString builds an identifier from text: the bytes of s are copied up to
// capacity, truncated if longer and zero-padded if shorter.
func FromString(s string) GUID {
	var g GUID
	copy(g[:], s)
	return g
}

// String returns the full 32-byte buffer as text, including any padding NUL
// bytes. Use Trimmed for the human-readable portion.
func (g GUID) String() string {
	return string(g[:])
}

// Trimmed returns the text up to the first padding NUL byte.
func (g GUID) Trimmed() string {
	for i, b := range g {
		if b == 0 {
			return string(g[:i])
		}
	}
	return string(g[:])
}

// Bytes returns a copy of the buffer.
func (g GUID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, g[:])
	return out
}

// IsZero reports whether the identifier is the all-zero value.
func (g GUID) IsZero() bool {
	return g == GUID{}
}
