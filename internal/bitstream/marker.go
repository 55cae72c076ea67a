// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"strings"
	"unicode/utf8"

	"github.com/dsnet/golib/bits"

	"github.com/dsnet/transduce/internal/errors"
)

// NewMarker compiles a character-class marker stream over data. For every
// character whose UTF-8 encoding occupies n bytes at position p, positions
// p..p+n-1 of the marker are set iff membership of the character in charset,
// XORed with invert, holds. Marking whole encodings keeps multi-byte
// characters intact across extract and deposit operations.
//
// NewMarker fails with an InvalidInput error if data is not valid UTF-8.
func NewMarker(data []byte, charset string, invert bool) (*Stream, error) {
	bb := bits.NewBuffer(nil)
	for i := 0; i < len(data); {
		r, n := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && n <= 1 {
			return nil, errors.Error{
				Code: errors.InvalidInput,
				Pkg:  "bitstream",
				Msg:  "invalid UTF-8 sequence",
			}
		}
		mark := strings.ContainsRune(charset, r) != invert
		for j := 0; j < n; j++ {
			bb.WriteBit(mark)
		}
		i += n
	}
	return FromBuffer(bb.Bytes()), nil
}
