// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package transduce converts CSV documents into pretty-printed JSON using a
// model of the Parabix parallel bit-stream approach.
//
// Rather than walking the input with a byte-at-a-time state machine, the
// document is transposed into eight parallel bit streams and the conversion
// is expressed as a pipeline of bitwise operations: character-class marker
// compilation, a pack-wise field-width scan, synthesis of an output template
// and its deposit mask, and parallel extract (PEXT) and deposit (PDEP) over
// whole streams. Every stage is written so that a production implementation
// could map it onto SIMD instructions one pack at a time; this prototype
// keeps the same semantics with scalar word-at-a-time code and operates on
// the whole document in memory.
//
// The CSV dialect is deliberately small: fields are separated by ',', rows
// are terminated by '\n' (the final row included), and quoting, escaping,
// and CRLF endings are out of scope. Field bytes are deposited into the JSON
// output verbatim, without quoting.
package transduce

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/transduce/internal/bitstream"
	"github.com/dsnet/transduce/internal/errors"
)

// delimiters is the character class separating CSV fields: the field
// separator and the row terminator.
const delimiters = ",\n"

var errBitCountMismatch = errors.Error{
	Code: errors.Internal,
	Pkg:  "transduce",
	Msg:  "deposit mask and extract mask bit counts differ",
}

// Transduce converts a CSV document into a JSON array of objects, one object
// per row, keyed by the given column names in order.
//
// The pack size is the granule of the pack-wise scans and must be a positive
// power of two; 64 is typical. Column names may contain non-ASCII characters
// and contribute their UTF-8 byte widths to the output layout. The number of
// fields in the document must be a non-zero multiple of the column count,
// and the document must end with a newline.
func Transduce(packSize int, columns []string, csv []byte) ([]byte, error) {
	return TransduceTo(JSON, packSize, columns, csv)
}

// TransduceTo is like Transduce, but converts toward an explicit target
// format. JSON is the only format with a converter today; any other target
// fails with an UnsupportedTarget error.
func TransduceTo(target Target, packSize int, columns []string, csv []byte) (out []byte, err error) {
	defer errs.Recover(&err)

	conv, err := newConverter(target, columns)
	if err != nil {
		return nil, err
	}
	if err := conv.verifyInputs(packSize, csv); err != nil {
		return nil, err
	}

	fieldMarker, err := bitstream.NewMarker(csv, delimiters, true)
	if err != nil {
		return nil, err
	}
	delimMarker, err := bitstream.NewMarker(csv, delimiters, false)
	if err != nil {
		return nil, err
	}

	widths, err := bitstream.FieldWidths(fieldMarker, delimMarker.Popcount(), packSize)
	if err != nil {
		return nil, err
	}
	template, err := conv.createTemplate(widths)
	if err != nil {
		return nil, err
	}
	mask, err := conv.depositMask(widths)
	if err != nil {
		return nil, err
	}
	errs.Assert(mask.Popcount() == fieldMarker.Popcount(), errBitCountMismatch)

	src := bitstream.Decompose(csv)
	dst := bitstream.Decompose(template)
	for k := 0; k < 8; k++ {
		extracted := bitstream.Extract(&src[k], fieldMarker)
		bitstream.Deposit(&dst[k], mask, extracted)
	}
	return dst.Recompose(len(template)), nil
}

// FieldWidths recovers the widths, in bytes and in document order, of every
// field in a CSV document. Empty fields report width zero, trailing empty
// fields included.
func FieldWidths(csv []byte, packSize int) ([]int, error) {
	fieldMarker, err := bitstream.NewMarker(csv, delimiters, true)
	if err != nil {
		return nil, err
	}
	delimMarker, err := bitstream.NewMarker(csv, delimiters, false)
	if err != nil {
		return nil, err
	}
	return bitstream.FieldWidths(fieldMarker, delimMarker.Popcount(), packSize)
}
