package pkg

import (
	"encoding/binary"
	"fmt"
)

// Blob layout, multi-byte integers little endian:
//
//	byte 0   n    distinct symbols, 1..255
//	byte 1   rem  padding bits in the last payload byte, 0..7
//	2..      n * (symbol, count_lo, count_hi)
//	rest     payload, MSB-first
const (
	headerPrefixSize = 2
	headerEntrySize  = 3
)

// Header carries what a decoder needs to rebuild the encoder's tree.
type Header struct {
	Rem   byte
	Table FrequencyTable
}

// Size returns the encoded header length, which is also the payload offset.
func (h Header) Size() int {
	return headerPrefixSize + headerEntrySize*len(h.Table)
}

func (h Header) validate() error {
	if len(h.Table) == 0 {
		return fmt.Errorf("%w: header declares no symbols", ErrFormat)
	}
	if len(h.Table) > MaxSymbols {
		return fmt.Errorf("%w: %d symbols, at most %d fit in the header", ErrAlphabetOverflow, len(h.Table), MaxSymbols)
	}
	if h.Rem > 7 {
		return fmt.Errorf("%w: %d padding bits, at most 7 allowed", ErrFormat, h.Rem)
	}
	var seen [256]bool
	for _, e := range h.Table {
		if seen[e.Symbol] {
			return fmt.Errorf("%w: symbol 0x%02x listed twice", ErrFormat, e.Symbol)
		}
		seen[e.Symbol] = true
		if e.Count == 0 {
			return fmt.Errorf("%w: symbol 0x%02x has zero count", ErrFormat, e.Symbol)
		}
	}
	return nil
}

// AppendBinary appends the encoded header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	b = append(b, byte(len(h.Table)), h.Rem)
	for _, e := range h.Table {
		b = append(b, e.Symbol)
		b = binary.LittleEndian.AppendUint16(b, e.Count)
	}
	return b, nil
}

func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, h.Size()))
}

// ParseHeader decodes the header at the start of blob. The payload starts
// at blob[h.Size():].
func ParseHeader(blob []byte) (Header, error) {
	if len(blob) < headerPrefixSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs at least %d", ErrFormat, len(blob), headerPrefixSize)
	}
	n := int(blob[0])
	if n == 0 {
		return Header{}, fmt.Errorf("%w: header declares no symbols", ErrFormat)
	}
	h := Header{Rem: blob[1], Table: make(FrequencyTable, n)}
	if len(blob) < h.Size() {
		return Header{}, fmt.Errorf("%w: %d bytes, header for %d symbols needs %d", ErrFormat, len(blob), n, h.Size())
	}

	off := headerPrefixSize
	for i := range h.Table {
		h.Table[i] = FrequencyEntry{
			Symbol: blob[off],
			Count:  binary.LittleEndian.Uint16(blob[off+1:]),
		}
		off += headerEntrySize
	}

	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}
