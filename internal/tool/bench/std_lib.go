// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"compress/lzw"
	"io"
)

// The standard library's LZW codec is the direct apples-to-apples baseline
// for this module's own lzw package: same algorithm family, MSB bit order
// to match this module's convention, but framed for the GIF/TIFF variant
// (CLEAR/EOI codes, fixed initial literal width) rather than a raw stream.
func init() {
	RegisterEncoder("std", func(w io.Writer, lvl int) io.WriteCloser {
		return lzw.NewWriter(w, lzw.MSB, 8)
	})
	RegisterDecoder("std", func(r io.Reader) io.ReadCloser {
		return lzw.NewReader(r, lzw.MSB, 8)
	})
}
