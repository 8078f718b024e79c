// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzw is a thin file-to-file driver around the lzw package: it
// performs no parsing, buffering, or framing of its own beyond what
// io.Copy already provides.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dsnet/lzw/lzw"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: lzw e|d <input> <output>")
		os.Exit(2)
	}
	mode, inPath, outPath := os.Args[1], os.Args[2], os.Args[3]

	if err := run(mode, inPath, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "lzw:", err)
		os.Exit(1)
	}
}

func run(mode, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch mode {
	case "e":
		zw := lzw.NewWriter(out)
		if _, err := io.Copy(zw, in); err != nil {
			return err
		}
		return zw.Close()
	case "d":
		zr := lzw.NewReader(in)
		if _, err := io.Copy(out, zr); err != nil {
			return err
		}
		return zr.Close()
	default:
		return fmt.Errorf("unknown mode %q, want e or d", mode)
	}
}
