/*
Package printer writes sequences of sums to a console with a fixed width font.

Values are separated by commas and wrapped first-fit at a configurable line
width. Widths are measured in fixed-width positions (“en”s) according to
UAX#11, which makes no difference for ASCII digits but keeps wrapping correct
for localized number renderings. Runs of equal sums may be highlighted in color.

	p := printer.New(os.Stdout, printer.ConfigFromTerminal(int(os.Stdout.Fd())))
	n, err := printer.Print(p, sums)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package printer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'subsums', falling back to the core tracer
// if no trace has been selected for this key.
func tracer() tracing.Trace {
	if t := tracing.Select("subsums"); t != nil {
		return t
	}
	return gtrace.CoreTracer
}
