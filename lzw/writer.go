// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "io"

// Writer is a streaming LZW encoder (components C5 and C7). It owns its
// dictionary arena, bit buffer, and stream adapter for the lifetime of a
// single stream; none of that state is safe to share across goroutines or
// across streams without calling Reset first.
type Writer struct {
	InputOffset  int64 // total bytes accepted by Write
	OutputOffset int64 // total bytes written to the underlying io.Writer

	bw        bitWriter
	dict      encoderDict
	omega     code // ω: the current matched prefix, or noCode before the first byte
	width     uint
	numResets int // count of whole-dictionary resets, for tests
	err       error
}

// NewWriter returns a Writer that emits a raw LZW code stream to w.
// Close must be called to flush the final code and any partial byte.
func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

// Reset reinitializes the Writer to encode a fresh stream to w, reusing
// the dictionary arena already allocated for this Writer if any.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{dict: zw.dict}
	zw.bw.init(w)
	zw.dict.init()
	zw.omega = noCode
	zw.width = startWidth
}

// Write encodes buf as a sequence of single-byte extends and dictionary
// misses (component C5). It never returns a short count unless err is
// also non-nil.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	var n int
	func() {
		defer errRecover(&zw.err)
		for _, c := range buf {
			zw.encodeByte(c)
			n++
		}
	}()
	zw.InputOffset += int64(n)
	if zw.err != nil {
		return n, zw.err
	}
	return n, nil
}

// encodeByte performs one step of the encoder state machine for input
// byte c, per spec §4.5. It panics (caught by Write's errRecover) on a
// write callback failure.
func (zw *Writer) encodeByte(c byte) {
	if zw.omega == noCode {
		// Very first byte of the stream: no prefix to extend or emit yet.
		zw.omega = code(c)
		return
	}
	if next := zw.dict.findChild(zw.omega, c); next != noCode {
		zw.omega = next
		return
	}

	// Miss: emit the matched prefix, try to grow the dictionary with it,
	// and widen the code width or reset as the new max dictates.
	zw.emit(zw.omega)
	if zw.dict.addChild(zw.omega, c) == noCode {
		zw.dict.reset()
		zw.width = startWidth
		zw.numResets++
	} else if zw.dict.max+1 == 1<<zw.width && zw.width < MaxWidth {
		zw.width++
	}
	zw.omega = code(c)
}

// emit writes c at the current code width, panicking on a write callback
// failure so the caller's errRecover can convert it back into a returned
// error.
func (zw *Writer) emit(c code) {
	if err := zw.bw.writeBits(c, zw.width); err != nil {
		panic(err)
	}
	zw.OutputOffset = zw.bw.dst.written
}

// Close emits the final ω (if any), pads the bit buffer to a byte
// boundary, flushes the stream adapter, and closes the stream. Calling
// Close more than once is safe.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}
	func() {
		defer errRecover(&zw.err)
		if zw.omega != noCode {
			zw.emit(zw.omega)
		}
		if err := zw.bw.flushBits(); err != nil {
			panic(err)
		}
		zw.OutputOffset = zw.bw.dst.written
	}()
	if zw.err != nil {
		return zw.err
	}
	zw.err = ErrClosed
	return nil
}
