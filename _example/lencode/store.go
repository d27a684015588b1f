package main

import (
	"bytes"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/octu0/lencode"
	"github.com/octu0/runlength"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

// Close closes every closer in order and returns the first error.
func (w *writeCloser) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = errors.WithStack(err)
		}
	}
	return first
}

// runlengthWriter collects the packed stream and run-length encodes it
// on Close.
type runlengthWriter struct {
	buf *bytes.Buffer
	out io.Writer
}

func (w *runlengthWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *runlengthWriter) Close() error {
	if err := runlength.NewEncoder(w.out).Encode(w.buf.Bytes()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func createOutput(path, compress string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	switch compress {
	case "", "none":
		return f, nil
	case "xz":
		zw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, errors.WithStack(err)
		}
		return &writeCloser{zw, []io.Closer{zw, f}}, nil
	case "brotli":
		bw := brotli.NewWriter(f)
		return &writeCloser{bw, []io.Closer{bw, f}}, nil
	case "runlength":
		rw := &runlengthWriter{buf: bytes.NewBuffer(nil), out: f}
		return &writeCloser{rw, []io.Closer{rw, f}}, nil
	}
	f.Close()
	return nil, errors.Errorf("unknown compression %q", compress)
}

func writeOutput(bs *lencode.BitStream, path, compress string) error {
	w, err := createOutput(path, compress)
	if err != nil {
		return err
	}
	if _, err := bs.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func loadState(path string) (*lencode.BitStream, error) {
	bs := lencode.NewBitStream()
	if path == "" {
		return bs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bs, nil
		}
		return nil, errors.WithStack(err)
	}
	if err := bs.UnmarshalCBOR(data); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return bs, nil
}

func saveState(bs *lencode.BitStream, path string) error {
	if path == "" {
		return nil
	}
	data, err := bs.MarshalCBOR()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
