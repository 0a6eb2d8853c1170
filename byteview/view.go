package byteview

import "bytes"

// Source is the capability shared by byte-region descriptors: read access to
// a contiguous run of bytes and its length. View is the borrowed variant,
// Buffer the owning one.
type Source interface {
	// Bytes returns the described region. Whether the slice is shared or a
	// defensive copy depends on the implementation.
	Bytes() []byte
	// Len returns the region length in bytes.
	Len() int
}

// View describes a contiguous region of memory holding raw bytes. It never
// owns or copies the region: it is equivalent to a (pointer, length) pair and
// is meant to be passed by value.
//
// The view stays valid only as long as the underlying array does, and only as
// long as nobody mutates it. That is the caller's obligation, not something
// View enforces. Views are safe to copy across goroutines under the same
// discipline.
type View struct {
	data []byte
}

// Of returns a view over b. The bytes are shared, not copied; a nil slice
// yields an empty view.
func Of(b []byte) View {
	return View{data: b}
}

// OfCString returns a view over the bytes of b up to (excluding) the first
// NUL byte. If b contains no NUL the view covers all of b. A nil slice yields
// an empty view rather than an error.
func OfCString(b []byte) View {
	if b == nil {
		return View{}
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return View{data: b[:i]}
	}
	return View{data: b}
}

// Bytes returns the viewed region itself. Callers must not mutate it.
func (v View) Bytes() []byte { return v.data }

// Len returns the stored length of the region.
func (v View) Len() int { return len(v.data) }

// Size is an alias for Len.
func (v View) Size() int { return v.Len() }

// IsEmpty reports whether the view covers no bytes.
func (v View) IsEmpty() bool { return len(v.data) == 0 }

// Slice returns a sub-view covering [lo, hi) of the region. Bounds behave
// like a slice expression: out-of-range indices panic.
func (v View) Slice(lo, hi int) View {
	return View{data: v.data[lo:hi]}
}

// Clone copies the viewed bytes into an owning Buffer, detaching the result
// from the underlying array's lifetime.
func (v View) Clone() Buffer {
	return NewBuffer(v.data)
}
