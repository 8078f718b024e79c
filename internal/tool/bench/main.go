// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bench compares this module's lzw codec against reference
// compression implementations (the standard library's GIF/TIFF-style lzw,
// klauspost/compress's flate, and ulikunitz/xz) on encode rate, decode
// rate, and compression ratio.
//
// Example usage:
//	$ go run ./internal/tool/bench \
//		-tests  encRate,decRate,ratio \
//		-codecs std,ds,klauspost,xz   \
//		-files  enwik8                \
//		-sizes  1e4,1e5,1e6
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/lzw/internal/tool/bench"
)

const (
	defaultLevels = "0"
	defaultSizes  = "1e4,1e5,1e6"
)

// encRefs is the priority order of which encoder to use for producing
// pre-compressed input to the decode-rate benchmark. A consistent reference
// encoder keeps decode rates across codecs comparable.
var encRefs = []string{"ds", "std", "klauspost", "xz"}

var testToEnum = map[string]int{
	"encRate": bench.TestEncodeRate,
	"decRate": bench.TestDecodeRate,
	"ratio":   bench.TestCompressRatio,
}
var enumToTest = map[int]string{
	bench.TestEncodeRate:    "encRate",
	bench.TestDecodeRate:    "decRate",
	bench.TestCompressRatio: "ratio",
}

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for k := range bench.Encoders {
		m[k] = true
	}
	for k := range bench.Decoders {
		m[k] = true
	}
	hasDS := m["ds"]
	delete(m, "ds")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasDS {
		s = append([]string{"ds"}, s...) // This module's own codec leads.
	}
	return strings.Join(s, ",")
}

func main() {
	f0 := flag.String("tests", defaultTests(), "List of benchmark tests to run")
	f1 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f2 := flag.String("paths", "", "List of paths to search for test files")
	f3 := flag.String("files", "", "List of input files to benchmark")
	f4 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f5 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	sep := regexp.MustCompile("[,:]")
	var tests []int
	for _, s := range sep.Split(*f0, -1) {
		t, ok := testToEnum[s]
		if !ok {
			panic("invalid test: " + s)
		}
		tests = append(tests, t)
	}
	codecs := sep.Split(*f1, -1)
	paths := sep.Split(*f2, -1)
	files := sep.Split(*f3, -1)
	var levels, sizes []int
	for _, s := range sep.Split(*f4, -1) {
		lvl, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid level: " + s)
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f5, -1) {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid size: " + s)
		}
		sizes = append(sizes, int(n))
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, tests, levels, sizes)
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
}

func runBenchmarks(files, codecs []string, tests, levels, sizes []int) {
	var encs, decs []string
	for _, c := range codecs {
		if _, ok := bench.Encoders[c]; ok {
			encs = append(encs, c)
		}
	}
	for _, c := range codecs {
		if _, ok := bench.Decoders[c]; ok {
			decs = append(decs, c)
		}
	}

	for _, t := range tests {
		var results [][]bench.Result
		var names, activeCodecs []string
		var title, suffix string

		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(encs) == 0 {
			fmt.Println("\tSKIP: no encoders available")
			continue
		}
		if len(decs) == 0 && t == bench.TestDecodeRate {
			fmt.Println("\tSKIP: no decoders available")
			continue
		}

		var cnt int
		tick := func() {
			total := len(activeCodecs) * len(files) * len(levels) * len(sizes)
			if total > 0 {
				fmt.Printf("\t[%6.2f%%] %d of %d\r", 100*float64(cnt)/float64(total), cnt, total)
			}
			cnt++
		}

		switch t {
		case bench.TestEncodeRate:
			activeCodecs, title, suffix = encs, "MB/s", ""
			results, names = bench.BenchmarkEncoderSuite(encs, files, levels, sizes, tick)
		case bench.TestDecodeRate:
			ref := getReferenceEncoder()
			activeCodecs, title, suffix = decs, "MB/s", ""
			results, names = bench.BenchmarkDecoderSuite(decs, files, levels, sizes, ref, tick)
		case bench.TestCompressRatio:
			activeCodecs, title, suffix = encs, "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(encs, files, levels, sizes, tick)
		default:
			panic("unknown test")
		}

		printResults(results, names, activeCodecs, title, suffix)
		fmt.Println()
	}
}

func getReferenceEncoder() bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[c]; ok {
			return enc
		}
	}
	for _, enc := range bench.Encoders {
		return enc
	}
	return nil
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0:
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1:
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0:
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
