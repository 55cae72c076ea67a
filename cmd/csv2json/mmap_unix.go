// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build linux || darwin
// +build linux darwin

package main

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps f read-only, falling back to a plain read for files that
// cannot be mapped (empty files and non-regular ones such as pipes).
func mmapFile(f *os.File) ([]byte, func(), error) {
	done := func() {}
	fi, err := f.Stat()
	if err != nil {
		return nil, done, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		data, err := io.ReadAll(f)
		return data, done, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		data, err := io.ReadAll(f)
		return data, done, err
	}
	return data, func() { unix.Munmap(data) }, nil
}
