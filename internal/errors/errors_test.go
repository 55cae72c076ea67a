// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package errors

import (
	"errors"
	"testing"
)

func TestError(t *testing.T) {
	var vectors = []struct {
		err  Error
		want string
	}{{
		err:  Error{Code: InvalidArgument, Pkg: "bitstream", Msg: "pack size must be a positive power of two"},
		want: "bitstream: invalid argument: pack size must be a positive power of two",
	}, {
		err:  Error{Code: MalformedRow, Msg: "document does not end with a newline"},
		want: "malformed row: document does not end with a newline",
	}, {
		err:  Error{Code: Internal, Pkg: "transduce"},
		want: "transduce: internal error",
	}}

	for i, v := range vectors {
		if got := v.err.Error(); got != v.want {
			t.Errorf("test %d, message mismatch:\ngot  %q\nwant %q", i, got, v.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	err := error(Error{Code: MalformedRow, Pkg: "transduce", Msg: "short row"})
	if !IsMalformedRow(err) {
		t.Errorf("IsMalformedRow mismatch: got false, want true")
	}
	for _, f := range []func(error) bool{IsInternal, IsInvalidArgument, IsInvalidInput, IsUnsupportedTarget} {
		if f(err) {
			t.Errorf("predicate mismatch: got true, want false")
		}
	}
	if IsMalformedRow(errors.New("malformed row")) {
		t.Errorf("foreign error matched: got true, want false")
	}
	if IsMalformedRow(nil) {
		t.Errorf("nil error matched: got true, want false")
	}
}
