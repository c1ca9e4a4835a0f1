package pkg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

// Suffix marks compressed files.
const Suffix = ".top"

var (
	ErrAlreadyCompressed = errors.New("file already has the " + Suffix + " suffix")
	ErrMissingSuffix     = errors.New("file lacks the " + Suffix + " suffix")
	ErrVerifyMismatch    = errors.New("round trip does not reproduce the input")
)

type FileOptions struct {
	Output string // derived from the source name when empty
	Force  bool   // overwrite an existing output
	Verify bool   // decode the blob again before writing it
	Log    *logrus.Logger
}

func (o FileOptions) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// CompressedName returns the default output name for compressing src.
func CompressedName(src string) (string, error) {
	if strings.HasSuffix(src, Suffix) {
		return "", fmt.Errorf("%s: %w", src, ErrAlreadyCompressed)
	}
	return src + Suffix, nil
}

// DecompressedName returns the default output name for decompressing src.
func DecompressedName(src string) (string, error) {
	name := strings.TrimSuffix(src, Suffix)
	if name == src || name == "" {
		return "", fmt.Errorf("%s: %w", src, ErrMissingSuffix)
	}
	return name, nil
}

// CompressFile encodes the file at src and writes the blob, returning the
// path written.
func CompressFile(src string, opts FileOptions) (string, error) {
	log := opts.logger()

	out := opts.Output
	if out == "" {
		var err error
		if out, err = CompressedName(src); err != nil {
			return "", err
		}
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	blob, err := Encode(raw)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", src, err)
	}

	fields := logrus.Fields{
		"src":        src,
		"raw":        len(raw),
		"compressed": len(blob),
		"symbols":    int(blob[0]),
	}
	if opts.Verify {
		restored, err := Decode(blob)
		if err != nil {
			return "", fmt.Errorf("verify %s: %w", src, err)
		}
		want, got := xxhash.Sum64(raw), xxhash.Sum64(restored)
		if want != got {
			return "", fmt.Errorf("verify %s: %w (xxhash %016x, got %016x)", src, ErrVerifyMismatch, want, got)
		}
		fields["xxhash"] = fmt.Sprintf("%016x", want)
		log.WithFields(fields).Debug("verified round trip")
	}

	if err := writeOutput(out, blob, opts.Force); err != nil {
		return "", err
	}
	log.WithFields(fields).WithField("out", out).Info("compressed")
	return out, nil
}

// DecompressFile decodes the blob at src and writes the original bytes,
// returning the path written.
func DecompressFile(src string, opts FileOptions) (string, error) {
	log := opts.logger()

	out := opts.Output
	if out == "" {
		var err error
		if out, err = DecompressedName(src); err != nil {
			return "", err
		}
	}

	blob, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	raw, err := Decode(blob)
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", src, err)
	}

	if err := writeOutput(out, raw, opts.Force); err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"src":        src,
		"out":        out,
		"compressed": len(blob),
		"raw":        len(raw),
		"xxhash":     fmt.Sprintf("%016x", xxhash.Sum64(raw)),
	}).Info("decompressed")
	return out, nil
}

// FileInfo is Info plus facts about the file holding the blob.
type FileInfo struct {
	*Info
	Path   string
	Digest uint64 // xxhash64 of the whole blob
}

func InspectFile(path string) (*FileInfo, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := Inspect(blob)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	return &FileInfo{Info: info, Path: path, Digest: xxhash.Sum64(blob)}, nil
}

func writeOutput(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
