// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Command refpack compresses and decompresses files in the RefPack/QFS
// format from the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/refpack"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "refpack:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("refpack", flag.ExitOnError)
	decode := fs.Bool("d", false, "decompress instead of compress")
	format := fs.String("format", "reference", "header format: reference, maxis, simea")
	mode := fs.String("mode", "fast", "encoder mode: fast, deep, optimal (compress only)")
	chainDepth := fs.Int("chain-depth", 0, "hash-chain depth for deep/optimal modes (0 = default)")
	out := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var in []byte
	var err error
	switch fs.NArg() {
	case 0:
		in, err = readAll(os.Stdin)
	case 1:
		in, err = os.ReadFile(fs.Arg(0))
	default:
		return fmt.Errorf("at most one input file expected, got %d", fs.NArg())
	}
	if err != nil {
		return err
	}

	var result []byte
	if *decode {
		result, err = decodeWith(*format, in)
	} else {
		result, err = encodeWith(*format, *mode, *chainDepth, in)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, createErr := os.Create(*out)
		if createErr != nil {
			return createErr
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(result)
	return err
}

func readAll(f *os.File) ([]byte, error) {
	const chunk = 64 * 1024
	var buf []byte
	for {
		b := make([]byte, chunk)
		n, err := f.Read(b)
		buf = append(buf, b[:n]...)
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return buf, err
		}
	}
}

func encodeWith(format, mode string, chainDepth int, in []byte) ([]byte, error) {
	opts := &refpack.CompressOptions{
		Mode: modeFor(mode),
		Deep: refpack.DeepOptions{ChainDepth: chainDepth},
	}

	switch format {
	case "reference":
		return refpack.CompressBytes[refpack.ReferenceFormat](in, opts)
	case "maxis":
		return refpack.CompressBytes[refpack.MaxisFormat](in, opts)
	case "simea":
		return refpack.CompressBytes[refpack.SimEAFormat](in, opts)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func decodeWith(format string, in []byte) ([]byte, error) {
	switch format {
	case "reference":
		return refpack.DecompressBytes[refpack.ReferenceFormat](in)
	case "maxis":
		return refpack.DecompressBytes[refpack.MaxisFormat](in)
	case "simea":
		return refpack.DecompressBytes[refpack.SimEAFormat](in)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func modeFor(s string) refpack.Mode {
	switch s {
	case "deep":
		return refpack.ModeDeep
	case "optimal":
		return refpack.ModeOptimal
	default:
		return refpack.ModeFast
	}
}
