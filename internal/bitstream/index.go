// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import "github.com/dsnet/transduce/internal/errors"

// NewIndex builds the pack index of s: bit j of the result is set iff the
// j-th packSize-bit window of s (pack 0 covering positions 0..packSize-1)
// contains at least one set bit. The index lets pack-wise scanners skip
// empty packs without touching them.
//
// NewIndex fails with an InvalidArgument error if packSize is not a positive
// power of two.
func NewIndex(s *Stream, packSize int) (*Stream, error) {
	if !isPow2(packSize) {
		return nil, errors.Error{
			Code: errors.InvalidArgument,
			Pkg:  "bitstream",
			Msg:  "pack size must be a positive power of two",
		}
	}
	idx := New(divCeil(s.Len(), packSize))
	for j := 0; j*packSize < s.Len(); j++ {
		if s.anyInRange(j*packSize, (j+1)*packSize) {
			idx.SetBit(j)
		}
	}
	return idx, nil
}
