// Copyright 2022, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// csv2json converts a CSV document into a pretty-printed JSON array of
// objects using the parallel bit-stream transducer.
//
// Usage:
//	csv2json [options] input.csv output.json
//
// The column names keying each JSON object come from the -columns flag or a
// YAML configuration file; flags win over the file. An input or output named
// "-" means standard input or output, and files with a .gz, .zst, .xz, or
// .lz4 extension are decompressed and compressed transparently. Plain input
// files are memory-mapped where the platform supports it.
//
// Exit codes: 0 on success, 2 on invalid arguments, 3 on malformed or
// undecodable input, and 1 on any other error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sys/cpu"
	"sigs.k8s.io/yaml"

	"github.com/dsnet/transduce"
)

type config struct {
	PackSize int      `json:"packSize"`
	Columns  []string `json:"columns"`
	Target   string   `json:"target"`
}

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("csv2json", flag.ExitOnError)
	packSize := fs.Int("pack-size", 64, "pack granule of the bit-stream scans; a positive power of two")
	columns := fs.String("columns", "", "comma-separated column names for the output objects")
	configPath := fs.String("config", "", "YAML configuration file with packSize, columns, and target")
	targetName := fs.String("target", "", `output format (only "json" is implemented)`)
	verbose := fs.Bool("v", false, "log diagnostics to standard error")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: csv2json [options] input.csv output.json")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	cfg := config{PackSize: 64, Target: "json"}
	if *configPath != "" {
		buf, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "csv2json:", err)
			return 2
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, "csv2json: config:", err)
			return 2
		}
		if cfg.PackSize == 0 {
			cfg.PackSize = 64
		}
		if cfg.Target == "" {
			cfg.Target = "json"
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pack-size":
			cfg.PackSize = *packSize
		case "columns":
			cfg.Columns = strings.Split(*columns, ",")
		case "target":
			cfg.Target = *targetName
		}
	})

	vlog := log.New(os.Stderr, "csv2json: ", 0)
	if !*verbose {
		vlog.SetOutput(io.Discard)
	}

	target, err := transduce.ParseTarget(cfg.Target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "csv2json:", err)
		return exitCode(err)
	}

	data, done, err := readInput(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "csv2json:", err)
		return 1
	}
	defer done()
	vlog.Printf("read %d bytes from %s", len(data), inPath)
	vlog.Printf("pack size %d, %d columns, target %v; hardware pext/pdep (BMI2): %v",
		cfg.PackSize, len(cfg.Columns), target, cpu.X86.HasBMI2)

	out, err := transduce.TransduceTo(target, cfg.PackSize, cfg.Columns, data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "csv2json:", err)
		return exitCode(err)
	}

	if err := writeOutput(outPath, out); err != nil {
		fmt.Fprintln(os.Stderr, "csv2json:", err)
		return 1
	}
	vlog.Printf("wrote %d bytes to %s", len(out), outPath)
	return 0
}

// exitCode maps an error to the documented process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case transduce.IsInvalidArgument(err), transduce.IsUnsupportedTarget(err):
		return 2
	case transduce.IsMalformedRow(err), transduce.IsInvalidInput(err):
		return 3
	default:
		return 1
	}
}
