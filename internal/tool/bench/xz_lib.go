// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz"
)

// xzReadCloser adapts xz.Reader (an io.Reader with no Close method of its
// own) to the io.ReadCloser shape the rest of this benchmark harness
// expects.
type xzReadCloser struct{ r io.Reader }

func (x xzReadCloser) Read(p []byte) (int, error) { return x.r.Read(p) }
func (x xzReadCloser) Close() error               { return nil }

// ulikunitz/xz is a pure-Go LZMA2 implementation: a large-dictionary,
// range-coded codec at the opposite end of the complexity spectrum from the
// variable-width LZW this module implements, useful as a ratio upper bound in
// the benchmark suite.
func init() {
	RegisterEncoder("xz", func(w io.Writer, lvl int) io.WriteCloser {
		zw, err := xz.NewWriter(w)
		if err != nil {
			panic(err)
		}
		return zw
	})
	RegisterDecoder("xz", func(r io.Reader) io.ReadCloser {
		zr, err := xz.NewReader(r)
		if err != nil {
			// Malformed or truncated input; report nothing readable rather
			// than panicking inside a benchmark loop.
			return xzReadCloser{r: ioutil.NopCloser(io.LimitReader(r, 0))}
		}
		return xzReadCloser{r: zr}
	})
}
