// Package stream opens input and output files, compressing or decompressing
// them according to their extension.
package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrFileNotFound wraps the os error when an input file does not exist.
var ErrFileNotFound = errors.New("stream: file not found")

// Codec names a compression format.
type Codec int

const (
	Plain Codec = iota
	Gzip
	Zstd
	LZ4
)

func (c Codec) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "plain"
	}
}

// CodecFromPath derives the codec from the file extension.
func CodecFromPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// NewReader wraps r with a decompressor for codec.
func NewReader(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with a compressor for codec. Closing the returned writer
// flushes the compressor but leaves w open.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// Open opens path for reading and decompresses it by extension.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	r, err := NewReader(file, CodecFromPath(path))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("could not decompress %s: %w", path, err)
	}
	return &chainCloser{Reader: r, closers: []io.Closer{r, file}}, nil
}

// Create creates path for writing and compresses it by extension.
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create %s: %w", path, err)
	}

	w, err := NewWriter(file, CodecFromPath(path))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("could not compress %s: %w", path, err)
	}
	return &chainCloser{Writer: w, closers: []io.Closer{w, file}}, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// chainCloser closes the codec before the file underneath it.
type chainCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (c *chainCloser) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
