/*
Package frontier provides the priority queue used by subset-sum enumeration.

A frontier holds entries of partially extended subsets, each carrying the sum
of its subset and the smallest element index still eligible for extension.
Entries are ordered by sum only; the index is payload. Ties between equal sums
resolve in no particular order.

The queue is a binary min-heap on top of container/heap. It is not safe for
concurrent use; an enumerator owns its frontier exclusively.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package frontier

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

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
