package seqio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
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

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

// Open returns a reader for path. "-" is stdin. gzip and zstd inputs are
// detected by magic number or by .gz/.zst suffix and decompressed.
func Open(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, closeFunc(func() error { return nil })
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}
	return wrap(bufio.NewReaderSize(src, 64<<10), closer, path)
}

// wrap sniffs br for a compression header and layers a decoder on top.
func wrap(br *bufio.Reader, closer io.Closer, name string) (io.ReadCloser, error) {
	sig, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		zc := closeFunc(func() error { zr.Close(); return nil })
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zc, closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
