package pkg

import "errors"

// Codec errors. They are returned wrapped with detail, so test for them
// with errors.Is.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrAlphabetOverflow = errors.New("alphabet overflow")
	ErrFormat           = errors.New("malformed blob")
	ErrTruncatedStream  = errors.New("truncated stream")
)
