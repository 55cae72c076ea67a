// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package transduce

import (
	"bytes"
	"strconv"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/transduce/internal/bitstream"
	"github.com/dsnet/transduce/internal/errors"
)

// placeholder is the filler byte occupying the template positions that the
// deposit pass later overwrites with field bytes.
const placeholder = '_'

var errMaskWidthMismatch = errors.Error{
	Code: errors.Internal,
	Pkg:  "transduce",
	Msg:  "deposit mask bit count differs from total field width",
}

// jsonConverter transduces extracted fields into a pretty-printed JSON array
// of objects, one object per CSV row.
//
// The template and the deposit mask must agree byte for byte on where every
// placeholder run sits, so both derive from the single boilerplate method
// below rather than from separate accounting.
type jsonConverter struct {
	columns []string
}

// boilerplate returns the literal bytes preceding and following the
// placeholder run of the field with ordinal j within its object. The first
// field of the file additionally opens the array, the first field of each
// object opens the object, and the last field of an object closes it,
// either continuing the array or, at the end of the file, closing it.
func (c *jsonConverter) boilerplate(j int, firstInFile, lastInFile bool) (pre, post string) {
	if j == 0 {
		if firstInFile {
			pre = "[\n"
		}
		pre += "    {\n"
	}
	pre += `        "` + c.columns[j] + `": `
	switch {
	case j < len(c.columns)-1:
		post = ",\n"
	case lastInFile:
		post = "\n    }\n]"
	default:
		post = "\n    },\n"
	}
	return pre, post
}

// checkWidths verifies that the field widths divide evenly into objects.
func (c *jsonConverter) checkWidths(widths []int) error {
	if len(widths) == 0 || len(widths)%len(c.columns) != 0 {
		return errors.Error{
			Code: errors.InvalidInput,
			Pkg:  "transduce",
			Msg: "cannot package " + strconv.Itoa(len(widths)) + " fields into objects of " +
				strconv.Itoa(len(c.columns)),
		}
	}
	return nil
}

// createTemplate synthesizes the output boilerplate byte stream: the JSON
// punctuation, keys, and indentation, with a placeholder run sized to each
// field width in document order.
func (c *jsonConverter) createTemplate(widths []int) ([]byte, error) {
	if err := c.checkWidths(widths); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	for i, w := range widths {
		pre, post := c.boilerplate(i%len(c.columns), i == 0, i == len(widths)-1)
		b.WriteString(pre)
		for n := 0; n < w; n++ {
			b.WriteByte(placeholder)
		}
		b.WriteString(post)
	}
	return b.Bytes(), nil
}

// depositMask synthesizes the PDEP mask for the template: one run of w set
// bits per field, positioned by advancing a cursor over the same preceding
// and following boilerplate byte counts that createTemplate emits.
func (c *jsonConverter) depositMask(widths []int) (mask *bitstream.Stream, err error) {
	defer errs.Recover(&err)
	if err := c.checkWidths(widths); err != nil {
		return nil, err
	}
	mask = new(bitstream.Stream)
	cursor, total := 0, 0
	for i, w := range widths {
		pre, post := c.boilerplate(i%len(c.columns), i == 0, i == len(widths)-1)
		cursor += len(pre)
		mask.SetRange(cursor, cursor+w)
		cursor += w + len(post)
		total += w
	}
	errs.Assert(mask.Popcount() == total, errMaskWidthMismatch)
	return mask, nil
}

// verifyInputs checks the structural assumptions before any stream work:
// the pack size is a positive power of two, the document ends with a
// newline, the delimiter count is a non-zero multiple of the column count,
// and the delimiters alternate correctly (every k-th one a row terminator,
// all others field separators).
//
// The delimiter walk runs on the extracted delimiter bytes themselves,
// obtained by applying PEXT to the basis streams with the delimiter marker
// as the mask and recomposing the result.
func (c *jsonConverter) verifyInputs(packSize int, csv []byte) error {
	if !powerOfTwo(packSize) {
		return errors.Error{
			Code: errors.InvalidArgument,
			Pkg:  "transduce",
			Msg:  "pack size must be a positive power of two",
		}
	}
	if len(csv) == 0 || csv[len(csv)-1] != '\n' {
		return errors.Error{
			Code: errors.MalformedRow,
			Pkg:  "transduce",
			Msg:  "document does not end with a newline",
		}
	}

	delimMarker, err := bitstream.NewMarker(csv, delimiters, false)
	if err != nil {
		return err
	}
	k := len(c.columns)
	n := delimMarker.Popcount()
	if n == 0 || n%k != 0 {
		return errors.Error{
			Code: errors.MalformedRow,
			Pkg:  "transduce",
			Msg: "field count " + strconv.Itoa(n) + " is not a non-zero multiple of column count " +
				strconv.Itoa(k),
		}
	}

	basis := bitstream.Decompose(csv)
	var extracted bitstream.BasisBits
	for i := 0; i < 8; i++ {
		extracted[i] = *bitstream.Extract(&basis[i], delimMarker)
	}
	for i, d := range extracted.Recompose(n) {
		switch {
		case i%k == k-1 && d != '\n':
			return errors.Error{
				Code: errors.MalformedRow,
				Pkg:  "transduce",
				Msg:  "row " + strconv.Itoa(i/k) + " is missing its newline terminator",
			}
		case i%k != k-1 && d != ',':
			return errors.Error{
				Code: errors.MalformedRow,
				Pkg:  "transduce",
				Msg:  "stray row terminator inside row " + strconv.Itoa(i/k),
			}
		}
	}
	return nil
}
