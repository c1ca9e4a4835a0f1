package pkg

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestPackBits(t *testing.T) {
	tests := []struct {
		bits    string
		payload []byte
		rem     byte
	}{
		{"", nil, 0},
		{"1110", []byte{0xe0}, 4},
		{"0000", []byte{0x00}, 4},
		{"10101010", []byte{0xaa}, 0},
		{"101010101", []byte{0xaa, 0x80}, 7},
		{"1111111100000001", []byte{0xff, 0x01}, 0},
	}

	for _, tt := range tests {
		c, err := ParseCode(tt.bits)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, rem, err := PackBits(c)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.bits, err)
		}
		if !bytes.Equal(payload, tt.payload) || rem != tt.rem {
			t.Errorf("%q: got %x rem %d, want %x rem %d", tt.bits, payload, rem, tt.payload, tt.rem)
		}

		back, err := UnpackBits(payload, rem)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.bits, err)
		}
		if back.String() != tt.bits {
			t.Errorf("Got %q, want %q", back, tt.bits)
		}
	}
}

func TestBitPackerIncremental(t *testing.T) {
	p := NewBitPacker()
	for _, s := range []string{"1", "10", "110", "0"} {
		c, _ := ParseCode(s)
		if err := p.WriteCode(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if p.Len() != 7 {
		t.Errorf("Got %d bits, want 7", p.Len())
	}
	payload, rem, err := p.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 10 110 0 + one padding bit
	if !bytes.Equal(payload, []byte{0xd8}) || rem != 1 {
		t.Errorf("Got %x rem %d, want d8 rem 1", payload, rem)
	}
}

func TestBitUnpacker(t *testing.T) {
	u, err := NewBitUnpacker([]byte{0x80, 0x01}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Remaining() != 13 {
		t.Errorf("Got %d remaining, want 13", u.Remaining())
	}

	var got Code
	for {
		bit, err := u.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, bit)
	}
	if got.String() != "1000000000000" {
		t.Errorf("Got %s, want 1000000000000", got)
	}
}

func TestBitUnpackerBadPadding(t *testing.T) {
	tests := []struct {
		payload []byte
		rem     byte
	}{
		{nil, 1},
		{[]byte{0xff}, 8},
		{[]byte{0xff, 0xff}, 200},
	}

	for _, tt := range tests {
		if _, err := NewBitUnpacker(tt.payload, tt.rem); !errors.Is(err, ErrFormat) {
			t.Errorf("%x rem %d: got error %v, want %v", tt.payload, tt.rem, err, ErrFormat)
		}
	}
}
