package estring

import (
	"bytes"
	"testing"

	"github.com/kbukum/dbkit/byteview"
	"github.com/kbukum/dbkit/errors"
)

func TestFromUTF8_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ascii", "hello world"},
		{"empty", ""},
		{"accented", "café"},
		{"bmp", "żółć κόσμε Привет"},
		{"supplementary plane", "𝄞 music 🎶"},
		{"mixed", "a𐍈béc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FromUTF8([]byte(tc.in))
			if err != nil {
				t.Fatalf("FromUTF8: %v", err)
			}
			out, err := s.UTF8()
			if err != nil {
				t.Fatalf("UTF8: %v", err)
			}
			if !bytes.Equal(out, []byte(tc.in)) {
				t.Errorf("round trip = %q, want %q", out, tc.in)
			}
		})
	}
}

func TestFromUTF8_SupplementaryPlaneUsesSurrogates(t *testing.T) {
	s, err := FromUTF8String("𝄞")
	if err != nil {
		t.Fatal(err)
	}
	units := s.Units()
	if len(units) != 2 {
		t.Fatalf("expected surrogate pair, got %d units", len(units))
	}
	if units[0] != 0xD834 || units[1] != 0xDD1E {
		t.Errorf("expected D834 DD1E, got %04X %04X", units[0], units[1])
	}
}

func TestFromUTF8_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"lone continuation byte", []byte{0x80}},
		{"truncated sequence", []byte{0xC3}},
		{"overlong encoding", []byte{0xC0, 0xAF}},
		{"surrogate encoded as utf-8", []byte{0xED, 0xA0, 0x80}},
		{"invalid byte", []byte{'a', 0xFF, 'b'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromUTF8(tc.in)
			if err == nil {
				t.Fatal("expected error under strict policy")
			}
			if !errors.IsUniform(err) {
				t.Errorf("expected uniform error kind, got %T", err)
			}

			s, err := FromUTF8WithPolicy(tc.in, Lossy)
			if err != nil {
				t.Fatalf("lossy decode should not fail: %v", err)
			}
			if s.IsEmpty() {
				t.Error("lossy decode should substitute U+FFFD, not drop input")
			}
		})
	}
}

func TestUTF8_UnpairedSurrogate(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
	}{
		{"lone high surrogate", []uint16{'a', 0xD800, 'b'}},
		{"lone low surrogate", []uint16{0xDC00}},
		{"high surrogate at end", []uint16{'x', 0xDBFF}},
		{"reversed pair", []uint16{0xDC00, 0xD800}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FromUTF16(tc.units)
			if _, err := s.UTF8(); err == nil {
				t.Fatal("expected error under strict policy")
			} else if !errors.IsUniform(err) {
				t.Errorf("expected uniform error kind, got %T", err)
			}

			out, err := s.UTF8WithPolicy(Lossy)
			if err != nil {
				t.Fatalf("lossy encode should not fail: %v", err)
			}
			if !bytes.Contains(out, []byte("�")) {
				t.Error("lossy encode should substitute U+FFFD")
			}
		})
	}
}

func TestFromUTF16_DirectCopy(t *testing.T) {
	units := []uint16{'h', 'i', 0xD834, 0xDD1E}
	s := FromUTF16(units)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	units[0] = 'X'
	if s.Units()[0] != 'h' {
		t.Error("FromUTF16 should copy, not alias")
	}
}

func TestFromView(t *testing.T) {
	v := byteview.Of([]byte("café"))
	s, err := FromView(v)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.StdString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestFromRunes(t *testing.T) {
	s, err := FromRunes([]rune("naïve 🎶"))
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "naïve 🎶" {
		t.Errorf("got %q", s.String())
	}

	if _, err := FromRunes([]rune{0xD800}); err == nil {
		t.Error("surrogate code point should be rejected")
	}
	if _, err := FromRunes([]rune{0x110000}); err == nil {
		t.Error("out-of-range code point should be rejected")
	}
}

func TestString_Mutation(t *testing.T) {
	var s String
	if !s.IsEmpty() {
		t.Fatal("zero value should be empty")
	}

	other, _ := FromUTF8String("ab")
	s.Append(other)
	if err := s.AppendRune('é'); err != nil {
		t.Fatal(err)
	}
	if s.String() != "abé" {
		t.Errorf("got %q, want %q", s.String(), "abé")
	}

	if err := s.AppendRune(0xDFFF); err == nil {
		t.Error("appending a surrogate should fail")
	}

	s.Assign([]uint16{'x'})
	if s.String() != "x" {
		t.Errorf("after Assign got %q", s.String())
	}

	s.Reset()
	if !s.IsEmpty() {
		t.Error("Reset should empty the value")
	}
}

func TestString_EqualAndCounts(t *testing.T) {
	a, _ := FromUTF8String("𝄞x")
	b, _ := FromUTF8String("𝄞x")
	c, _ := FromUTF8String("𝄞y")

	if !a.Equal(b) {
		t.Error("equal values should compare equal")
	}
	if a.Equal(c) {
		t.Error("different values should not compare equal")
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3 code units", a.Len())
	}
	n, err := a.RuneCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("RuneCount() = %d, want 2", n)
	}
}

func TestString_StringerIsLossy(t *testing.T) {
	s := FromUTF16([]uint16{'a', 0xD800})
	if got := s.String(); got != "a�" {
		t.Errorf("display rendering should substitute, got %q", got)
	}
}
