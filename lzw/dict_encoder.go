// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// encNode is one entry of the encoder's trie (component C3): the string it
// represents is the string of prev followed by byte. Children of a node
// are threaded through firstChild/nextSibling as a singly linked,
// head-insert (LIFO) list, so that newest children are found fastest.
type encNode struct {
	prev        code
	firstChild  code
	nextSibling code
	byte        byte
}

// encoderDict is the encoder's dictionary arena: a fixed-capacity trie of
// dictSize nodes, the first 256 of which are the pre-populated
// single-byte codes and never change shape.
type encoderDict struct {
	nodes []encNode
	max   code
}

// init allocates the arena on first use and resets it to its initial
// state. Allocation happens exactly once per Writer for its lifetime, per
// the resource model: no allocation occurs during steady-state encoding.
func (d *encoderDict) init() {
	if d.nodes == nil {
		d.nodes = make([]encNode, dictSize)
		for i := 0; i < numLiterals; i++ {
			d.nodes[i] = encNode{prev: noCode, firstChild: noCode, nextSibling: noCode, byte: byte(i)}
		}
	}
	d.reset()
}

// reset clears every literal's child list and drops max back to the last
// literal code. Nodes above 255 are left untouched in memory; they become
// unreachable garbage because no parent any longer points to them.
func (d *encoderDict) reset() {
	for i := 0; i < numLiterals; i++ {
		d.nodes[i].firstChild = noCode
	}
	d.max = numLiterals - 1
}

// findChild returns the child of parent whose trailing byte is b, or
// noCode if no such child exists. This is a linear scan of parent's child
// list, bounded in practice by how many distinct bytes have ever followed
// that prefix.
func (d *encoderDict) findChild(parent code, b byte) code {
	for c := d.nodes[parent].firstChild; c != noCode; c = d.nodes[c].nextSibling {
		if d.nodes[c].byte == b {
			return c
		}
	}
	return noCode
}

// addChild inserts a new child of parent for byte b and returns its code,
// or noCode if the dictionary has no room left (max already at its
// ceiling). On success this is always the new value of max.
func (d *encoderDict) addChild(parent code, b byte) code {
	if d.max == maxCode {
		return noCode
	}
	i := d.max + 1
	d.nodes[i] = encNode{prev: parent, firstChild: noCode, nextSibling: d.nodes[parent].firstChild, byte: b}
	d.nodes[parent].firstChild = i
	d.max = i
	return i
}
