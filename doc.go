/*
Package subsums enumerates the subset sums of a sequence of numbers in sorted order.

Subset Sums

For a sequence of n non-negative numbers there are 2^n subsets, each with a sum
(the empty subset has sum 0). An Enumerator produces these sums one at a time,
smallest first, without ever materializing the power set. Sums of distinct
subsets are reported separately, even if they are equal:

	[1 2 3]  →  0 1 2 3 3 4 5 6

Enumeration is pull-based. Clients ask for the next sum by calling Next or by
ranging over Range, and may stop at any time. An enumerator does no more work
than needed to produce the values requested so far: one pop from a priority
frontier and a handful of pushes per value.

_________________________________________________________________________

How it works

The input is copied and sorted ascending. A frontier (a min-heap) holds
partially determined subsets as pairs of (sum, next index). It starts with the
empty subset (0, 0). To produce a value, the entry with the smallest sum is
popped and reported, and every extension of its subset by one element at
index next index or later is pushed. As all elements are ≥ 0 and sorted, no
push can ever undercut a value already reported, so the output is sorted.
Extensions only use indices beyond the largest one already chosen, so every
subset is constructed along exactly one path.

Inputs which are too large to sort or hold, or which are unbounded, may be
enumerated with NewAscending. Here the caller guarantees that the input is
already non-decreasing, and elements are pulled from the input only when the
frontier needs them.

Preconditions

Elements must be ≥ 0. With negative elements the order of the output would
silently break, so New rejects them with ErrNegativeElement and
NewAscending stops the enumeration, reporting the cause with Err.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package subsums

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'subsums', falling back to the core tracer
// if no trace has been selected for this key.
func tracer() tracing.Trace {
	if t := tracing.Select("subsums"); t != nil {
		return t
	}
	return gtrace.CoreTracer
}

// SumsError is an error type for the subsums module
type SumsError string

func (e SumsError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SumsError("illegal arguments")

// ErrNegativeElement is flagged for input elements < 0. Negative elements
// would break the ordering of the enumerated sums.
const ErrNegativeElement = SumsError("negative element")

// ErrNotAscending is flagged if an input promised to be non-decreasing
// yields an element smaller than its predecessor.
const ErrNotAscending = SumsError("input not in ascending order")

// ErrFrontierLimit is flagged when an enumeration would grow its frontier
// beyond the configured limit.
const ErrFrontierLimit = SumsError("frontier limit exceeded")

// ErrInvalidConfig signals an invalid enumerator configuration.
const ErrInvalidConfig = SumsError("invalid configuration")

// ErrOverflow is flagged when a subset sum is not representable in the
// element type.
const ErrOverflow = SumsError("sum overflows element type")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
