// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "io"

// Reader is a streaming LZW decoder (components C6 and C7). Read drives
// the decode loop a step at a time, emitting decoded bytes into its
// internal toRead buffer and handing them out until it is drained, then
// taking another step — the same toRead-draining shape the teacher's
// flate.Reader and bzip2.Reader use.
type Reader struct {
	InputOffset  int64 // total bytes read from the underlying io.Reader
	OutputOffset int64 // total bytes emitted from Read

	br        bitReader
	dict      decoderDict
	prev      code // the most recently read code, or noCode
	firstByte byte // first byte of the previously emitted string
	width     uint
	numResets int // count of whole-dictionary resets, for tests
	toRead    []byte
	err       error
}

// NewReader returns a Reader that decodes a raw LZW code stream read from
// r.
func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

// Reset reinitializes the Reader to decode a fresh stream from r, reusing
// the dictionary arena already allocated for this Reader if any.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{dict: zr.dict}
	zr.br.init(r)
	zr.dict.init()
	zr.prev = noCode
	zr.width = startWidth
}

// Read implements io.Reader. It returns io.EOF once the code stream is
// cleanly exhausted.
func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.toRead) > 0 {
			n := copy(buf, zr.toRead)
			zr.toRead = zr.toRead[n:]
			zr.OutputOffset += int64(n)
			return n, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		func() {
			defer errRecover(&zr.err)
			zr.step()
		}()
		zr.InputOffset = zr.br.src.read
		if zr.err != nil {
			return 0, zr.err
		}
	}
}

// Close marks the Reader closed once the stream has been read to a clean
// EOF, after which Read returns ErrClosed. Called before that point, it
// returns the Reader's stored error, if any, and leaves the Reader open.
func (zr *Reader) Close() error {
	if zr.err == io.EOF || zr.err == ErrClosed {
		zr.toRead = nil
		zr.err = ErrClosed
		return nil
	}
	return zr.err
}

// step performs one iteration of the decoder state machine (spec §4.6):
// read one code, emit the string it names, grow the dictionary, and
// widen or reset as needed. It panics on a read callback failure,
// ErrInvalidCode, or ErrInputUnderrun, all caught by Read's errRecover.
func (zr *Reader) step() {
	nc, err := zr.br.readBits(zr.width)
	if err != nil {
		panic(err) // io.EOF ends the stream cleanly; other errors are real failures
	}

	var s []byte
	var first byte
	var justReset bool

	switch {
	case nc <= zr.dict.max:
		// Known code: straightforward lookup.
		s, first = zr.dict.stringOf(nc)
		if zr.prev != noCode {
			zr.dict.add(zr.prev, first)
		}
		justReset = zr.growWidthAndMaybeReset()

	case nc == zr.dict.max+1:
		// K-ω-K: nc names a string not yet in the dictionary, namely the
		// string of prev with its own first byte appended again. This
		// requires a predecessor; a stream that names it as the first code
		// of a stream or of an epoch is malformed.
		if zr.prev == noCode {
			panic(ErrInvalidCode)
		}
		zr.dict.add(zr.prev, zr.firstByte)
		s, first = zr.dict.stringOf(nc)
		justReset = zr.growWidthAndMaybeReset()

	default:
		panic(ErrInvalidCode)
	}

	zr.firstByte = first
	zr.toRead = s
	if justReset {
		zr.prev = noCode
	} else {
		zr.prev = nc
	}
}

// growWidthAndMaybeReset applies the width-widening rule symmetric to the
// encoder's (spec §4.5c/§4.6) and, if the dictionary has just filled to
// capacity, resets it. It reports whether a reset happened, in which case
// the caller must also treat the next code as having no predecessor —
// the same path the very first code of the stream takes.
//
// The widening check can't simply reuse zr.dict.max: the encoder inserts
// the pair (ω, next byte) the instant it misses, but the decoder can only
// complete the matching pair as (prev, first byte of the code just read),
// one code later than the encoder formed it. zr.dict.max therefore trails
// the encoder's dictionary size by exactly one code for the whole epoch,
// so the check is applied to the reconstructed encoder-side max instead.
func (zr *Reader) growWidthAndMaybeReset() bool {
	encoderMax := zr.dict.max + 1
	if encoderMax+1 == 1<<zr.width && zr.width < MaxWidth {
		zr.width++
	}
	if zr.dict.max == maxCode {
		zr.dict.reset()
		zr.width = startWidth
		zr.numResets++
		return true
	}
	return false
}
