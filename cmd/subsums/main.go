/*
Command subsums prints the subset sums of a collection of non-negative
numbers in ascending order.

	subsums 1 2 3
	subsums --range 0:100 --take 5
	subsums --file weights.txt --ascending --max 1000 --count
	subsums --html table.html --width 40

Flags may be given as environment variables with prefix SUBSUMS
(e.g. SUBSUMS_TAKE=5) or in a configuration file (--config).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
