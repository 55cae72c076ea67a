// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// readInput reads the whole document from path, "-" meaning standard input.
// Compressed files are recognized by extension and decompressed on the fly;
// plain files are memory-mapped where the platform supports it. The returned
// function releases the mapping, if any, and must be called after the last
// use of the data.
func readInput(path string) (data []byte, done func(), err error) {
	done = func() {}
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, done, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, done, err
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, done, err
		}
		defer zr.Close()
		data, err = io.ReadAll(zr)
		return data, done, err
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, done, err
		}
		defer zr.Close()
		data, err = io.ReadAll(zr)
		return data, done, err
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, done, err
		}
		data, err = io.ReadAll(xr)
		return data, done, err
	case ".lz4":
		data, err = io.ReadAll(lz4.NewReader(f))
		return data, done, err
	default:
		return mmapFile(f)
	}
}

// writeOutput writes the document to path, "-" meaning standard output, and
// compresses by extension the same way readInput decompresses.
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var wr io.Writer = f
	var closers []io.Closer
	switch filepath.Ext(path) {
	case ".gz":
		zw := gzip.NewWriter(f)
		wr, closers = zw, append(closers, zw)
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return err
		}
		wr, closers = zw, append(closers, zw)
	case ".xz":
		xw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return err
		}
		wr, closers = xw, append(closers, xw)
	case ".lz4":
		zw := lz4.NewWriter(f)
		wr, closers = zw, append(closers, zw)
	}
	closers = append(closers, f)

	if _, err := wr.Write(data); err != nil {
		for _, c := range closers {
			c.Close()
		}
		return err
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}
