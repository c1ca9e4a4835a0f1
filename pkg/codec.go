package pkg

import (
	"bytes"
	"fmt"
	"io"
)

// Encode compresses data into a self-describing blob: a header carrying
// the frequency table and padding count, followed by the packed Huffman
// payload. The same input always yields the same blob.
func Encode(data []byte) ([]byte, error) {
	table, err := CountFrequencies(data)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(table)
	if err != nil {
		return nil, err
	}

	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}

	p := NewBitPacker()
	for _, b := range data {
		if err := p.WriteCode(codes[b]); err != nil {
			return nil, err
		}
	}
	payload, rem, err := p.Finish()
	if err != nil {
		return nil, err
	}

	h := Header{Rem: rem, Table: table}
	out := make([]byte, 0, h.Size()+len(payload))
	out, err = h.AppendBinary(out)
	if err != nil {
		return nil, err
	}
	return append(out, payload...), nil
}

// Decode reverses Encode. It rebuilds the tree from the header and walks
// it bit by bit, emitting a symbol at every leaf.
func Decode(blob []byte) ([]byte, error) {
	h, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(h.Table)
	if err != nil {
		return nil, err
	}

	u, err := NewBitUnpacker(blob[h.Size():], h.Rem)
	if err != nil {
		return nil, err
	}

	total := h.Table.Total()
	out := make([]byte, 0, total)
	node := root
	for u.Remaining() > 0 {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
		}

		// A leaf root spends exactly one bit per symbol.
		if root.IsLeaf() {
			out = append(out, root.Symbol)
			continue
		}

		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			out = append(out, node.Symbol)
			node = root
		}
	}

	if node != root {
		return nil, fmt.Errorf("%w: payload ends inside a code", ErrTruncatedStream)
	}
	if uint64(len(out)) != total {
		return nil, fmt.Errorf("%w: decoded %d symbols, header counts %d", ErrFormat, len(out), total)
	}
	return out, nil
}

// Compress reads all of src and returns the encoded blob.
func Compress(src io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	blob, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(blob), nil
}

// Decompress reads a whole blob from src and returns the original bytes.
func Decompress(src io.Reader) ([]byte, error) {
	blob, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Decode(blob)
}
