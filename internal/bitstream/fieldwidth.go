// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"math/bits"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/transduce/internal/errors"
)

var errWidthOverrun = errors.Error{
	Code: errors.Internal,
	Pkg:  "bitstream",
	Msg:  "field-width scan produced more widths than delimiters",
}

// FieldWidths recovers the widths, in bytes and in document order, of the
// fields encoded in a field marker stream. A field is a maximal run of set
// bits in marker; adjacent runs are separated by a single delimiter position,
// and two back-to-back delimiters encode an empty field of width zero.
//
// The scan operates on the inverse stream, where delimiters are the set bits:
// counting trailing zeros locates the next delimiter, and the distance
// between consecutive delimiter positions yields the enclosed width. The
// inverse is masked one position past the last content bit so that a
// synthetic terminator closes the final field, and only packs flagged by the
// index of the inverse stream are examined. Fields spanning pack boundaries
// need no special handling since the previous delimiter position persists
// across packs.
//
// Delimiters trailing the last content byte enclose empty fields that the
// inverse-stream mask leaves implicit; delims, the total number of delimiter
// bytes in the document, restores them as zero-width entries at the end.
//
// FieldWidths fails with an InvalidArgument error if delims is negative or
// packSize is not a positive power of two.
func FieldWidths(marker *Stream, delims, packSize int) (widths []int, err error) {
	defer errs.Recover(&err)
	if delims < 0 {
		return nil, errors.Error{
			Code: errors.InvalidArgument,
			Pkg:  "bitstream",
			Msg:  "negative delimiter count",
		}
	}

	n := marker.Len() + 1
	inv := Not(marker, n)
	idx, err := NewIndex(inv, packSize)
	if err != nil {
		return nil, err
	}

	widths = make([]int, 0, delims)
	last := -1 // conceptual delimiter before position 0
	for j := idx.NextOne(0); j >= 0; j = idx.NextOne(j + 1) {
		base := j * packSize
		for off := 0; off < packSize; off += wordBits {
			w := inv.Extract64(base+off, min(wordBits, packSize-off))
			for w != 0 {
				pos := base + off + bits.TrailingZeros64(w)
				widths = append(widths, pos-last-1)
				last = pos
				w &= w - 1
			}
		}
	}

	errs.Assert(len(widths) <= delims, errWidthOverrun)
	for len(widths) < delims {
		widths = append(widths, 0)
	}
	return widths, nil
}
