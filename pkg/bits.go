package pkg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Bit order is MSB first: the first bit written lands in bit 7 of the
// first payload byte.

type bitWriter interface {
	WriteBool(b bool) error
	Align() (skipped byte, err error)
}

type bitReader interface {
	ReadBool() (bool, error)
}

// BitPacker accumulates codes into whole bytes.
type BitPacker struct {
	buf bytes.Buffer
	w   bitWriter
	n   uint64
}

func NewBitPacker() *BitPacker {
	p := &BitPacker{}
	p.w = bitio.NewWriter(&p.buf)
	return p
}

func (p *BitPacker) WriteCode(c Code) error {
	for _, bit := range c {
		if err := p.w.WriteBool(bit); err != nil {
			return err
		}
	}
	p.n += uint64(len(c))
	return nil
}

// Len returns the number of logical bits written so far.
func (p *BitPacker) Len() uint64 { return p.n }

// Finish pads the last byte with zero bits and returns the payload along
// with the number of padding bits added. An empty bit string yields no
// payload bytes and rem 0.
func (p *BitPacker) Finish() (payload []byte, rem byte, err error) {
	rem, err = p.w.Align()
	if err != nil {
		return nil, 0, err
	}
	return p.buf.Bytes(), rem, nil
}

// PackBits packs a whole bit string at once.
func PackBits(bits Code) ([]byte, byte, error) {
	p := NewBitPacker()
	if err := p.WriteCode(bits); err != nil {
		return nil, 0, err
	}
	return p.Finish()
}

// BitUnpacker yields the logical bits of a payload, stopping before the
// trailing rem padding bits.
type BitUnpacker struct {
	r    bitReader
	left uint64
}

func NewBitUnpacker(payload []byte, rem byte) (*BitUnpacker, error) {
	if rem > 7 {
		return nil, fmt.Errorf("%w: %d padding bits, at most 7 allowed", ErrFormat, rem)
	}
	total := uint64(len(payload)) * 8
	if uint64(rem) > total {
		return nil, fmt.Errorf("%w: %d padding bits declared for an empty payload", ErrFormat, rem)
	}
	return &BitUnpacker{
		r:    bitio.NewReader(bytes.NewReader(payload)),
		left: total - uint64(rem),
	}, nil
}

// Remaining returns the number of logical bits not yet read.
func (u *BitUnpacker) Remaining() uint64 { return u.left }

// ReadBit returns the next logical bit, or io.EOF once only padding is left.
func (u *BitUnpacker) ReadBit() (bool, error) {
	if u.left == 0 {
		return false, io.EOF
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		return false, err
	}
	u.left--
	return bit, nil
}

// UnpackBits expands a whole payload into its logical bit string.
func UnpackBits(payload []byte, rem byte) (Code, error) {
	u, err := NewBitUnpacker(payload, rem)
	if err != nil {
		return nil, err
	}
	bits := make(Code, 0, u.Remaining())
	for u.Remaining() > 0 {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}
	return bits, nil
}
