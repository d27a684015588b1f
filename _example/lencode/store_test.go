package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/octu0/lencode"
	"github.com/octu0/runlength"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type testCloser struct {
	err    error
	closed bool
}

func (c *testCloser) Close() error {
	c.closed = true
	return c.err
}

func TestWriteCloser(t *testing.T) {
	t.Run("closes all after failure", func(tt *testing.T) {
		failed := errors.New("flush failed")
		first := &testCloser{err: failed}
		second := &testCloser{}
		w := &writeCloser{io.Discard, []io.Closer{first, second}}

		require.ErrorIs(tt, w.Close(), failed)
		if second.closed != true {
			tt.Errorf("second closer not closed")
		}
	})
}

func TestWriteOutput(t *testing.T) {
	bs, err := lencode.Encode(lencode.Range(64), lencode.Fixed)
	require.NoError(t, err)

	t.Run("runlength", func(tt *testing.T) {
		path := filepath.Join(tt.TempDir(), "out.rle")
		require.NoError(tt, writeOutput(bs, path, "runlength"))

		f, err := os.Open(path)
		require.NoError(tt, err)
		defer f.Close()

		got, err := runlength.NewDecoder().Decode(f)
		require.NoError(tt, err)
		if bytes.Equal(got, bs.Bytes()) != true {
			tt.Errorf("%x != %x", got, bs.Bytes())
		}
	})
	t.Run("none", func(tt *testing.T) {
		path := filepath.Join(tt.TempDir(), "out.bin")
		require.NoError(tt, writeOutput(bs, path, "none"))

		got, err := os.ReadFile(path)
		require.NoError(tt, err)
		if bytes.Equal(got, bs.Bytes()) != true {
			tt.Errorf("%x != %x", got, bs.Bytes())
		}
	})
	t.Run("unknown", func(tt *testing.T) {
		path := filepath.Join(tt.TempDir(), "out.bin")
		require.Error(tt, writeOutput(bs, path, "zstd"))
	})
}
