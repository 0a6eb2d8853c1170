package byteview

import (
	"bytes"
	"testing"
)

func TestNewBuffer_Owns(t *testing.T) {
	src := []byte("payload")
	buf := NewBuffer(src)
	src[0] = 'X'
	if buf.String() != "payload" {
		t.Errorf("buffer should copy at construction, got %q", buf.String())
	}
}

func TestBuffer_BytesIsDefensive(t *testing.T) {
	buf := BufferFromString("abc")
	out := buf.Bytes()
	out[0] = 'X'
	if buf.String() != "abc" {
		t.Errorf("mutating Bytes() result should not affect buffer, got %q", buf.String())
	}
	if !bytes.Equal(buf.ByteSlice(), []byte("abc")) {
		t.Errorf("ByteSlice() = %q, want %q", buf.ByteSlice(), "abc")
	}
}

func TestBuffer_View(t *testing.T) {
	buf := BufferFromString("hello")
	v := buf.View()
	if v.Len() != buf.Len() {
		t.Errorf("view Len() = %d, want %d", v.Len(), buf.Len())
	}
	if v.String() != "hello" {
		t.Errorf("view String() = %q, want %q", v.String(), "hello")
	}
}

func TestBuffer_Empty(t *testing.T) {
	var buf Buffer
	if !buf.IsEmpty() || buf.Len() != 0 {
		t.Error("zero-value buffer should be empty")
	}
	if got := NewBuffer(nil); !got.IsEmpty() {
		t.Error("NewBuffer(nil) should be empty")
	}
}

func TestSource_Dispatch(t *testing.T) {
	sources := []Source{
		Of([]byte("raw")),
		NewBuffer([]byte("owned")),
	}
	for _, s := range sources {
		if s.Len() != len(s.Bytes()) {
			t.Errorf("%T: Len() = %d, len(Bytes()) = %d", s, s.Len(), len(s.Bytes()))
		}
	}
}
