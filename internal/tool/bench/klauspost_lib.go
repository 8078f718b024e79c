// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// klauspost/compress's flate is a general-purpose LZ77+Huffman codec, not an
// LZW implementation, but it is the closest drop-in ratio/speed comparison
// point available from this module's dependency graph: same single-stream,
// no-dictionary-reset-signal shape as this module's lzw, same io.Writer/
// io.Reader collaborator surface.
func init() {
	RegisterEncoder("klauspost", func(w io.Writer, lvl int) io.WriteCloser {
		if lvl < flate.HuffmanOnly || lvl > flate.BestCompression {
			lvl = flate.DefaultCompression
		}
		zw, err := flate.NewWriter(w, lvl)
		if err != nil {
			panic(err)
		}
		return zw
	})
	RegisterDecoder("klauspost", func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}
