package pkg

// Info describes a blob without decoding its payload.
type Info struct {
	Header      Header
	Codes       CodeTable
	Total       uint64 // symbols in the original data
	HeaderSize  int
	PayloadSize int
	PayloadBits uint64 // logical bits, padding excluded
}

// Ratio returns the blob size relative to the original data size.
func (i *Info) Ratio() float64 {
	if i.Total == 0 {
		return 0
	}
	return float64(i.HeaderSize+i.PayloadSize) / float64(i.Total)
}

// Inspect parses the header of blob and derives the code table the
// encoder used.
func Inspect(blob []byte) (*Info, error) {
	h, err := ParseHeader(blob)
	if err != nil {
		return nil, err
	}

	payload := blob[h.Size():]
	u, err := NewBitUnpacker(payload, h.Rem)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(h.Table)
	if err != nil {
		return nil, err
	}
	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}

	return &Info{
		Header:      h,
		Codes:       codes,
		Total:       h.Table.Total(),
		HeaderSize:  h.Size(),
		PayloadSize: len(payload),
		PayloadBits: u.Remaining(),
	}, nil
}
