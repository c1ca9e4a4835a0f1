package pkg

import (
	"fmt"
	"math"
)

const (
	// MaxSymbols is the largest distinct-symbol count the one-byte header field holds.
	MaxSymbols = math.MaxUint8
	// MaxCount is the largest per-symbol count the two-byte header field holds.
	MaxCount = math.MaxUint16
)

// FrequencyEntry is one observed symbol and how often it occurred.
type FrequencyEntry struct {
	Symbol byte
	Count  uint16
}

// FrequencyTable lists the observed symbols in first-seen order.
type FrequencyTable []FrequencyEntry

// Total returns the sum of all counts, i.e. the length of the source data.
func (t FrequencyTable) Total() uint64 {
	var total uint64
	for _, e := range t {
		total += uint64(e.Count)
	}
	return total
}

func (t FrequencyTable) Symbols() []byte {
	syms := make([]byte, len(t))
	for i, e := range t {
		syms[i] = e.Symbol
	}
	return syms
}

// CountFrequencies scans data and returns the count of every distinct byte,
// ordered by first occurrence.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var counts [256]int
	var order []byte
	for _, b := range data {
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	if len(order) > MaxSymbols {
		return nil, fmt.Errorf("%w: %d distinct symbols, at most %d fit in the header", ErrAlphabetOverflow, len(order), MaxSymbols)
	}

	table := make(FrequencyTable, 0, len(order))
	for _, b := range order {
		if counts[b] > MaxCount {
			return nil, fmt.Errorf("%w: symbol 0x%02x occurs %d times, at most %d fit in the header", ErrAlphabetOverflow, b, counts[b], MaxCount)
		}
		table = append(table, FrequencyEntry{Symbol: b, Count: uint16(counts[b])})
	}
	return table, nil
}
