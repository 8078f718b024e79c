// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"errors"
	"testing"
)

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriterPropagatesCallbackError(t *testing.T) {
	wantErr := errors.New("boom")
	zw := NewWriter(errWriter{wantErr})
	// The input must encode to more than the 256-byte stream buffer, so
	// that the callback is invoked during Write rather than only at Close.
	_, err := zw.Write(bytes.Repeat([]byte("ab"), 1<<14))
	if err != wantErr {
		t.Fatalf("got error %v, want %v", err, wantErr)
	}
	// Once a Writer has failed, it must keep reporting the same error
	// instead of attempting to make further progress.
	if _, err := zw.Write([]byte("x")); err != wantErr {
		t.Fatalf("got error %v after failure, want %v", err, wantErr)
	}
	if err := zw.Close(); err != wantErr {
		t.Fatalf("Close error %v, want %v", err, wantErr)
	}
}

func TestWriterOffsets(t *testing.T) {
	var buf bytes.Buffer
	zw := NewWriter(&buf)
	in := []byte("ABABABABAB")
	n, err := zw.Write(in)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if n != len(in) {
		t.Fatalf("got n=%d, want %d", n, len(in))
	}
	if zw.InputOffset != int64(len(in)) {
		t.Fatalf("got InputOffset=%d, want %d", zw.InputOffset, len(in))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if zw.OutputOffset != int64(buf.Len()) {
		t.Fatalf("got OutputOffset=%d, want %d", zw.OutputOffset, buf.Len())
	}
}

func TestWriterWidensOnSchedule(t *testing.T) {
	zw := NewWriter(new(bytes.Buffer))
	if zw.width != startWidth {
		t.Fatalf("got initial width=%d, want %d", zw.width, startWidth)
	}
	// Feed enough distinct two-byte sequences to push the dictionary past
	// its first widening boundary (512 entries at width 9).
	var buf bytes.Buffer
	zw2 := NewWriter(&buf)
	in := make([]byte, 0, 1<<12)
	for i := 0; i < 1<<12; i++ {
		in = append(in, byte(i), byte(i>>8))
	}
	if _, err := zw2.Write(in); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if zw2.width <= startWidth {
		t.Fatalf("got width=%d, want > %d after enough misses", zw2.width, startWidth)
	}
	if err := zw2.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
