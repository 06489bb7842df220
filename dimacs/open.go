package dimacs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Open opens path for reading, decompressing it when the name ends in ".gz".
// Closing the returned reader closes the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("dimacs: %s: %w", path, err)
	}

	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}

	return zerr
}

// Create opens path for writing, compressing when the name ends in ".gz".
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	return &gzipSink{Writer: gzip.NewWriter(f), f: f}, nil
}

type gzipSink struct {
	*gzip.Writer
	f *os.File
}

func (g *gzipSink) Close() error {
	zerr := g.Writer.Close()
	if err := g.f.Close(); err != nil {
		return err
	}

	return zerr
}
