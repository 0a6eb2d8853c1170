package byteview

import "unsafe"

// OfString returns a view over the bytes of s without copying. The view
// shares memory with the string; since strings are immutable, the viewed
// bytes must never be written through any aliasing slice.
func OfString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// String returns the viewed bytes as a string without copying. The result
// shares memory with the underlying array: it is only stable while the
// caller's no-mutation obligation holds.
func (v View) String() string {
	if len(v.data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(v.data), len(v.data))
}
