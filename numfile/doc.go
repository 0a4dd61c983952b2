/*
Package numfile provides API helpers to load files of integers as input for
subset-sum enumeration.

A number file is a UTF-8 text file of decimal integers, separated by
whitespace or commas. Lines starting with '#' are comments:

	# weights
	90, 91, 92
	920 921

Files are parsed by a background goroutine which prefetches batches of numbers
ahead of the consumer, while the API presents a plain sequence of numbers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package numfile

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
