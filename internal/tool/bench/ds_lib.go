// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/lzw/lzw"
)

func init() {
	RegisterEncoder("ds", func(w io.Writer, lvl int) io.WriteCloser {
		return lzw.NewWriter(w)
	})
	RegisterDecoder("ds", func(r io.Reader) io.ReadCloser {
		return lzw.NewReader(r)
	})
}
