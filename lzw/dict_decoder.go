// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// decNode is one entry of the decoder's dictionary (component C4): code i
// expands to the string of prev followed by byte. Unlike the encoder's
// trie, no child list is needed — the decoder only ever walks parent
// chains, never searches for children.
type decNode struct {
	prev code
	byte byte
}

// decoderDict is the decoder's dictionary arena plus the scratch buffer
// stringOf reconstructs strings into.
type decoderDict struct {
	nodes   []decNode
	max     code
	scratch []byte // sized to dictSize; bounds the longest reconstructable string
}

func (d *decoderDict) init() {
	if d.nodes == nil {
		d.nodes = make([]decNode, dictSize)
		d.scratch = make([]byte, dictSize)
		for i := 0; i < numLiterals; i++ {
			d.nodes[i] = decNode{prev: noCode, byte: byte(i)}
		}
	}
	d.reset()
}

func (d *decoderDict) reset() {
	d.max = numLiterals - 1
}

// add records that code max+1 expands to the string of prev followed by
// b, and returns that new code, or noCode if the dictionary is already at
// capacity.
func (d *decoderDict) add(prev code, b byte) code {
	if d.max == maxCode {
		return noCode
	}
	i := d.max + 1
	d.nodes[i] = decNode{prev: prev, byte: b}
	d.max = i
	return i
}

// stringOf reconstructs the string that code c expands to by walking the
// parent chain from c back to a literal, writing bytes into the scratch
// buffer from the tail toward the head. It returns the filled slice (in
// head-to-tail order) along with the first byte of that string, which the
// caller needs both for the K-ω-K case and for the next dictionary
// insertion.
func (d *decoderDict) stringOf(c code) (s []byte, first byte) {
	i := len(d.scratch)
	for {
		i--
		n := d.nodes[c]
		d.scratch[i] = n.byte
		first = n.byte
		if n.prev == noCode {
			break
		}
		c = n.prev
	}
	return d.scratch[i:], first
}
