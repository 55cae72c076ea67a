// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package transduce

import "github.com/dsnet/transduce/internal/errors"

// Target enumerates the output formats the transducer knows about.
//
// The set of targets is closed and small, so formats are variants of an
// enumeration rather than a registry: adding one means writing a converter
// and extending the switch in newConverter. Only JSON has a converter today;
// CSV is reserved for a pass-through target.
type Target int

const (
	JSON Target = iota + 1
	CSV
)

func (t Target) String() string {
	switch t {
	case JSON:
		return "json"
	case CSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseTarget maps a format name, as accepted on the command line, to a
// Target. Unrecognized names fail with an UnsupportedTarget error.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	default:
		return 0, errors.Error{
			Code: errors.UnsupportedTarget,
			Pkg:  "transduce",
			Msg:  "unknown target format " + name,
		}
	}
}
