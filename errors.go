// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package transduce

import "github.com/dsnet/transduce/internal/errors"

// Errors returned by this module are tagged with a failure class. All of
// them are fatal to the current transduction; none are retried internally.
// The predicates below let callers dispatch without matching message text.

// IsInvalidArgument reports whether err indicates a bad caller-provided
// parameter, such as a pack size that is not a positive power of two.
func IsInvalidArgument(err error) bool { return errors.IsInvalidArgument(err) }

// IsInvalidInput reports whether err indicates input that cannot be decoded
// at all, such as a byte stream that is not valid UTF-8 or an empty column
// list.
func IsInvalidInput(err error) bool { return errors.IsInvalidInput(err) }

// IsMalformedRow reports whether err indicates a document that violates the
// row structure: a missing terminal newline, an incomplete final row, or a
// field count that does not divide by the column count.
func IsMalformedRow(err error) bool { return errors.IsMalformedRow(err) }

// IsUnsupportedTarget reports whether err indicates a request for an output
// format that has no converter.
func IsUnsupportedTarget(err error) bool { return errors.IsUnsupportedTarget(err) }

// IsInternal reports whether err indicates an invariant violation detected
// downstream of the stage that caused it; it points at a bug in the
// pipeline, not at the input.
func IsInternal(err error) bool { return errors.IsInternal(err) }
