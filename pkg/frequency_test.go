package pkg

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	got, err := CountFrequencies([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FrequencyTable{{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
	if got.Total() != 11 {
		t.Errorf("Got total %d, want 11", got.Total())
	}
	if s := got.Symbols(); string(s) != "abrcd" {
		t.Errorf("Got symbols %q, want %q", s, "abrcd")
	}
}

func TestCountFrequenciesLimits(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyInput},
		{"255 symbols", all[:255], nil},
		{"256 symbols", all, ErrAlphabetOverflow},
		{"max count", bytes.Repeat([]byte{'x'}, MaxCount), nil},
		{"count overflow", bytes.Repeat([]byte{'x'}, MaxCount+1), ErrAlphabetOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountFrequencies(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}
