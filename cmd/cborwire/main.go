// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return 2
	}

	subcommand := args[0]
	switch subcommand {
	case "help", "-h", "--help":
		usage(os.Stdout)
		return 0
	case "validate", "diag":
	default:
		fmt.Fprintf(os.Stderr, "cborwire: unknown subcommand %q\n", subcommand)
		usage(os.Stderr)
		return 2
	}

	flags := pflag.NewFlagSet(subcommand, pflag.ContinueOnError)
	hexInput := flags.BoolP("hex", "x", false, "treat input as hex-encoded CBOR")
	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "cborwire %s: %v\n", subcommand, err)
		return 2
	}

	positional := flags.Args()
	if len(positional) > 1 {
		fmt.Fprintf(os.Stderr, "cborwire %s: takes at most one file argument, got %q\n", subcommand, positional[1])
		return 2
	}
	var path string
	if len(positional) == 1 {
		path = positional[0]
	}

	data, err := readInput(path, *hexInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cborwire %s: %v\n", subcommand, err)
		return 1
	}

	switch subcommand {
	case "validate":
		err = validate(data, os.Stdout)
	case "diag":
		err = diag(data, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cborwire %s: %v\n", subcommand, err)
		return 1
	}
	return 0
}

func usage(w *os.File) {
	fmt.Fprint(w, `usage: cborwire <subcommand> [-x] [file]

subcommands:
  validate   check that the input is a well-formed item sequence
  diag       print RFC 8949 diagnostic notation, one line per item

flags:
  -x, --hex  treat input as hex-encoded CBOR (whitespace ignored)

Input is read from the file argument if given, otherwise stdin.
`)
}
