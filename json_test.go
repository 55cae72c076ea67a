// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package transduce

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/transduce/internal/errors"
	"github.com/dsnet/transduce/internal/testutil"
)

func dots(n int) string { return strings.Repeat(".", n) }

func TestCreateTemplate(t *testing.T) {
	var vectors = []struct {
		columns []string
		widths  []int
		want    string
	}{{
		columns: []string{"col1"},
		widths:  []int{3},
		want:    "[\n    {\n        \"col1\": ___\n    }\n]",
	}, {
		columns: []string{"col1", "col2", "col3"},
		widths:  []int{2, 3, 4},
		want: "[\n    {\n        \"col1\": __,\n        \"col2\": ___,\n" +
			"        \"col3\": ____\n    }\n]",
	}, {
		columns: []string{"col1"},
		widths:  []int{3, 2},
		want:    "[\n    {\n        \"col1\": ___\n    },\n    {\n        \"col1\": __\n    }\n]",
	}, {
		columns: []string{"x", "y"},
		widths:  []int{1, 0, 0, 2},
		want: "[\n    {\n        \"x\": _,\n        \"y\": \n    },\n" +
			"    {\n        \"x\": ,\n        \"y\": __\n    }\n]",
	}, {
		// Column names contribute their UTF-8 byte widths.
		columns: []string{"한글"},
		widths:  []int{1},
		want:    "[\n    {\n        \"한글\": _\n    }\n]",
	}}

	for i, v := range vectors {
		conv := &jsonConverter{columns: v.columns}
		got, err := conv.createTemplate(v.widths)
		require.NoError(t, err, "test %d", i)
		if diff := cmp.Diff(v.want, string(got)); diff != "" {
			t.Errorf("test %d, template mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDepositMask(t *testing.T) {
	// The deposit mask for "12,abc,flap\n" with three four-byte column
	// names: runs of 2, 3, and 4 bits separated by the boilerplate bytes
	// between the placeholders.
	conv := &jsonConverter{columns: []string{"col1", "col2", "col3"}}
	mask, err := conv.depositMask([]int{2, 3, 4})
	require.NoError(t, err)

	want := testutil.ParseBits(dots(24) + "11" + dots(18) + "111" + dots(18) + "1111")
	assert.Equal(t, want.String(), mask.String())
}

func TestDepositMaskMatchesTemplate(t *testing.T) {
	// The mask must mark exactly the placeholder bytes of the template.
	var vectors = []struct {
		columns []string
		widths  []int
	}{
		{[]string{"col1"}, []int{3}},
		{[]string{"col1"}, []int{3, 2, 7}},
		{[]string{"a", "bb", "ccc"}, []int{0, 1, 2, 3, 4, 5}},
		{[]string{"한글", "y"}, []int{5, 0}},
		{[]string{"x"}, []int{0}},
	}

	for i, v := range vectors {
		conv := &jsonConverter{columns: v.columns}
		template, err := conv.createTemplate(v.widths)
		require.NoError(t, err, "test %d", i)
		mask, err := conv.depositMask(v.widths)
		require.NoError(t, err, "test %d", i)

		var total int
		for _, w := range v.widths {
			total += w
		}
		assert.Equal(t, total, mask.Popcount(), "test %d, popcount", i)

		for p, b := range template {
			if got, want := mask.Bit(p), b == placeholder; got != want {
				t.Errorf("test %d, mask bit %d mismatch: got %v, want %v", i, p, got, want)
			}
		}
	}
}

func TestBoilerplate(t *testing.T) {
	// Boilerplate byte counts around each placeholder, per position of the
	// field within its object and the file.
	conv := &jsonConverter{columns: []string{"col1", "col2", "col3"}}

	var vectors = []struct {
		j                    int
		firstInFile          bool
		lastInFile           bool
		preBytes, postBytes  int
	}{
		{j: 0, firstInFile: true, preBytes: 2 + 6 + 12 + 4, postBytes: 2},
		{j: 0, preBytes: 6 + 12 + 4, postBytes: 2},
		{j: 1, preBytes: 12 + 4, postBytes: 2},
		{j: 2, preBytes: 12 + 4, postBytes: 8},
		{j: 2, lastInFile: true, preBytes: 12 + 4, postBytes: 8},
	}

	for i, v := range vectors {
		pre, post := conv.boilerplate(v.j, v.firstInFile, v.lastInFile)
		assert.Equal(t, v.preBytes, len(pre), "test %d, preceding bytes", i)
		assert.Equal(t, v.postBytes, len(post), "test %d, following bytes", i)
	}
}

func TestCheckWidths(t *testing.T) {
	conv := &jsonConverter{columns: []string{"x", "y"}}
	for _, widths := range [][]int{{}, {1}, {1, 2, 3}} {
		_, err := conv.createTemplate(widths)
		assert.True(t, errors.IsInvalidInput(err), "widths %v: got %v", widths, err)
	}
}

func TestVerifyInputs(t *testing.T) {
	conv := &jsonConverter{columns: []string{"x", "y"}}

	assert.NoError(t, conv.verifyInputs(64, []byte("1,2\n3,4\n")))
	assert.True(t, errors.IsInvalidArgument(conv.verifyInputs(63, []byte("1,2\n"))))
	assert.True(t, errors.IsMalformedRow(conv.verifyInputs(64, []byte("1,2"))))
	assert.True(t, errors.IsMalformedRow(conv.verifyInputs(64, []byte("1,2,3\n"))))
	assert.True(t, errors.IsMalformedRow(conv.verifyInputs(64, []byte("1\n2\n"))))
	assert.True(t, errors.IsMalformedRow(conv.verifyInputs(64, []byte(""))))
}
