// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type errReader struct{ err error }

func (r errReader) Read(p []byte) (int, error) { return 0, r.err }

func TestReaderPropagatesCallbackError(t *testing.T) {
	wantErr := errors.New("boom")
	zr := NewReader(errReader{wantErr})
	_, err := zr.Read(make([]byte, 16))
	if err != wantErr {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
}

func TestReaderSmallBuffer(t *testing.T) {
	var buf bytes.Buffer
	zw := NewWriter(&buf)
	in := bytes.Repeat([]byte("hello world, "), 500)
	if _, err := zw.Write(in); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	zr := NewReader(&buf)
	var out []byte
	b := make([]byte, 3) // deliberately smaller than most decoded strings
	for {
		n, err := zr.Read(b)
		out = append(out, b[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read error: %v", err)
		}
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round-trip mismatch with a small read buffer")
	}
}

func TestReaderOffsets(t *testing.T) {
	var buf bytes.Buffer
	zw := NewWriter(&buf)
	in := []byte("ABABABABAB")
	if _, err := zw.Write(in); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	wantInputBytes := int64(buf.Len())

	zr := NewReader(bytes.NewReader(buf.Bytes()))
	out := make([]byte, 0, len(in))
	b := make([]byte, 1)
	for {
		n, err := zr.Read(b)
		out = append(out, b[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read error: %v", err)
		}
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("got %q, want %q", out, in)
	}
	if zr.OutputOffset != int64(len(in)) {
		t.Fatalf("got OutputOffset=%d, want %d", zr.OutputOffset, len(in))
	}
	if zr.InputOffset != wantInputBytes {
		t.Fatalf("got InputOffset=%d, want %d", zr.InputOffset, wantInputBytes)
	}
}
