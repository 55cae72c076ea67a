// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package transduce

import (
	"github.com/dsnet/transduce/internal/bitstream"
	"github.com/dsnet/transduce/internal/errors"
)

// converter transforms extracted CSV fields toward one target format.
// It mirrors the shape of the pipeline: verifyInputs runs before any stream
// work, createTemplate produces the boilerplate byte stream with placeholder
// runs sized to the field widths, and depositMask marks the bit positions
// inside that template where extracted field bits land.
type converter interface {
	verifyInputs(packSize int, csv []byte) error
	createTemplate(widths []int) ([]byte, error)
	depositMask(widths []int) (*bitstream.Stream, error)
}

// newConverter returns the converter for the given target, or an
// UnsupportedTarget error if no converter exists for it.
func newConverter(target Target, columns []string) (converter, error) {
	if len(columns) == 0 {
		return nil, errors.Error{
			Code: errors.InvalidInput,
			Pkg:  "transduce",
			Msg:  "empty column list",
		}
	}
	switch target {
	case JSON:
		return &jsonConverter{columns: columns}, nil
	default:
		return nil, errors.Error{
			Code: errors.UnsupportedTarget,
			Pkg:  "transduce",
			Msg:  "no converter for target " + target.String(),
		}
	}
}

// Report whether n is a positive power of two.
func powerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
