package byteview

// Buffer holds an immutable, owned copy of a byte region. Unlike View it
// detaches from the source slice at construction and hands out defensive
// copies, so a Buffer stays valid for its whole lifetime regardless of what
// happens to the bytes it was built from.
type Buffer struct {
	data []byte
}

// NewBuffer copies b into a new owning buffer.
func NewBuffer(b []byte) Buffer {
	return Buffer{data: cloneBytes(b)}
}

// BufferFromString copies the bytes of s into a new owning buffer.
func BufferFromString(s string) Buffer {
	return Buffer{data: []byte(s)}
}

// Bytes returns a copy of the buffer contents.
func (b Buffer) Bytes() []byte { return cloneBytes(b.data) }

// ByteSlice is an alias for Bytes, returning a defensive copy.
func (b Buffer) ByteSlice() []byte { return b.Bytes() }

// Len returns the buffer length in bytes.
func (b Buffer) Len() int { return len(b.data) }

// IsEmpty reports whether the buffer holds no bytes.
func (b Buffer) IsEmpty() bool { return len(b.data) == 0 }

// String returns the buffer contents as a string.
func (b Buffer) String() string { return string(b.data) }

// View lends a non-owning view over the buffer contents. The view is valid
// as long as the buffer (or any copy of it) is reachable.
func (b Buffer) View() View {
	return View{data: b.data}
}

var (
	_ Source = View{}
	_ Source = Buffer{}
)

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
