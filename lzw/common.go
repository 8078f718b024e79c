// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements a streaming LZW encoder and decoder.
//
// Unlike compress/lzw and the TIFF/GIF/Postscript variants it mimics, this
// package writes a raw, header-less code stream: no magic, no CLEAR or EOI
// sentinel, no length or checksum. The dictionary starts with the 256
// single-byte codes, grows one code per miss, widens its code width on a
// fixed schedule, and resets itself in its entirety whenever it fills —
// all without any out-of-band signal. Encoder and decoder must therefore
// stay in lock-step on dictionary state and code width at all times; see
// the package-level tests for the schedule this depends on.
package lzw

import "runtime"

const (
	// MaxWidth is the largest code width this package ever emits or reads.
	// It is a compile-time constant, not a per-stream option: both the
	// encoder and decoder of a given stream must be built with the same
	// value. The valid range is 12 to 24; 20 is the reference value.
	MaxWidth = 20

	// startWidth is the code width in effect immediately after init or
	// reset, wide enough to name the first assignable code (256).
	startWidth = 9

	// numLiterals is the count of single-byte codes pre-populated at
	// init and after every reset.
	numLiterals = 256

	// firstCode is the first code available for dictionary growth.
	firstCode = numLiterals

	// dictSize is the total number of codes a dictionary arena holds.
	dictSize = 1 << MaxWidth

	// maxCode is the largest valid code value.
	maxCode = dictSize - 1
)

func init() {
	if MaxWidth < 12 || MaxWidth > 24 {
		panic("lzw: MaxWidth must be between 12 and 24")
	}
}

// code identifies a string in the dictionary. noCode marks the absence of
// a code (the "ω is empty" / "no previous code yet" state), playing the
// role that a NODE_NULL sentinel plays in implementations without a
// native option type.
type code int32

const noCode code = -1

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var (
	// ErrInvalidCode is reported when the decoder reads a code that names
	// neither an existing dictionary entry nor the one entry the K-ω-K
	// case is allowed to synthesize.
	ErrInvalidCode error = Error("invalid code")

	// ErrInputUnderrun is reported when the input ends with leftover bits
	// that cannot be zero-pad (8 or more of them, or any one bit set) yet
	// are too few to form another code.
	ErrInputUnderrun error = Error("truncated code stream")

	// ErrDictionaryFull is reported if a reset is attempted while the
	// dictionary cannot be cleared back below capacity. Correct encoder
	// and decoder logic never triggers this; it exists to surface a
	// broken invariant rather than corrupt output silently.
	ErrDictionaryFull error = Error("dictionary reset did not free codes")

	// ErrClosed is returned by Write/Read calls made after Close.
	ErrClosed error = Error("stream is closed")
)

// errRecover recovers a panic raised by the encode/decode step functions
// and stores it in *err, following the same pattern as the teacher
// package's bzip2 and flate readers/writers: runtime errors still panic,
// everything else becomes a normal error return.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
