// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"
)

// FuzzDecoder feeds arbitrary byte sequences to the decoder. A raw,
// header-less code stream has no magic or checksum to reject garbage up
// front, so every code-length prefix of every input is a "valid-looking"
// stream as far as the decoder's framing is concerned; the only acceptable
// outcomes are a clean decode, io.EOF, ErrInputUnderrun, or ErrInvalidCode
// — never a panic. This supersedes the legacy gofuzz-tagged harness with
// Go's native fuzzing support.
func FuzzDecoder(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x20, 0x80})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add(bytes.Repeat([]byte{0xaa}, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		zr := NewReader(bytes.NewReader(data))
		_, err := ioutil.ReadAll(zr)
		switch err {
		case nil, io.EOF, ErrInputUnderrun, ErrInvalidCode:
			// All expected outcomes for arbitrary input.
		default:
			t.Fatalf("unexpected error decoding fuzz input: %v", err)
		}
	})
}

// FuzzRoundTrip checks that every encoded stream decodes back to its exact
// input, for arbitrary inputs rather than just the hand-picked scenarios in
// lzw_test.go.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("A"))
	f.Add([]byte("ABABABABAB"))
	f.Add(bytes.Repeat([]byte{0x00}, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		var buf bytes.Buffer
		zw := NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("Close error: %v", err)
		}
		zr := NewReader(&buf)
		out, err := ioutil.ReadAll(zr)
		if err != nil {
			t.Fatalf("ReadAll error: %v", err)
		}
		if !bytes.Equal(data, out) {
			t.Fatalf("round-trip mismatch: got %x, want %x", out, data)
		}
	})
}
