// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

// Extract gathers the bits of s at the positions where mask is set and
// compacts them toward position 0 of the result. This is the PEXT operation
// generalized to unbounded streams: hardware PEXT handles one word at a
// time, while this model walks the maximal runs of the mask and moves each
// run with word-sized copies.
func Extract(s, mask *Stream) *Stream {
	out := New(mask.Popcount())
	outPos := 0
	for p := mask.NextOne(0); p >= 0; {
		e := mask.NextZero(p)
		copyBits(out, outPos, s, p, e-p)
		outPos += e - p
		p = mask.NextOne(e)
	}
	return out
}

// Deposit scatters the low bits of src into dst at the positions where mask
// is set, consuming src least-significant-bit first. Each run of the mask is
// overwritten wholesale, so target bits inside a run are zeroed before the
// source bits land; bits of dst outside every run are preserved.
func Deposit(dst, mask, src *Stream) {
	srcPos := 0
	for p := mask.NextOne(0); p >= 0; {
		e := mask.NextZero(p)
		copyBits(dst, p, src, srcPos, e-p)
		srcPos += e - p
		p = mask.NextOne(e)
	}
}
