// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helpers.
package testutil

import "github.com/dsnet/transduce/internal/bitstream"

// ParseBits decodes a dotted bit-string into a stream.
//
// The format is designed for scripting bit-stream test vectors by hand while
// keeping them visually aligned with the documents they mark: the first
// character of the string is position 0 (the first byte of the document),
// '1' is a set bit, and '.' or '0' is a clear bit. Space and underscore are
// ignored so that long vectors may be grouped into packs. Any other
// character panics, as this is strictly a test helper.
func ParseBits(s string) *bitstream.Stream {
	bs := new(bitstream.Stream)
	var i int
	for _, c := range s {
		switch c {
		case '1':
			bs.SetBit(i)
			i++
		case '.', '0':
			i++
		case ' ', '_':
		default:
			panic("testutil: invalid bit-string character: " + string(c))
		}
	}
	return bs
}
