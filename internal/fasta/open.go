package fasta

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by the
// magic number (1F 8B) or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadAll reads the whole of path as text for Load.
func ReadAll(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", fmt.Errorf("fasta: read %s: %w", path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("fasta: read %s: %w", path, err)
	}
	return string(b), nil
}

// LoadFiles reads and loads each path, merging the records in argument order.
func LoadFiles(paths []string) (Set, error) {
	var set Set
	for _, p := range paths {
		raw, err := ReadAll(p)
		if err != nil {
			return Set{}, err
		}
		set = set.Merge(Load(raw))
	}
	return set, nil
}
