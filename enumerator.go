package subsums

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/subsums/frontier"
)

// Enumerator produces the subset sums of a sequence of numbers in
// non-decreasing order.
//
// An enumerator is a single-use, pull-based sequence: each call to Next
// produces the next sum, until all 2^n sums for an input of n elements have
// been produced. It cannot be rewound; to start over, create a new enumerator
// from the same input.
//
// An enumerator is not safe for concurrent use. Different enumerators share
// no state and may be used from different goroutines.
type Enumerator[N Number] struct {
	elements []N                // sorted elements (known so far, for streams)
	frontier *frontier.Queue[N] // partially extended subsets
	source   *source[N]         // nil for slice input
	cfg      Config
	produced int
	pushed   int
	stopped  bool
	err      error
}

// source holds the pull side of an ascending input sequence.
type source[N Number] struct {
	next     func() (N, bool)
	stop     func()
	drained  bool
	released bool
}

// New creates an enumerator for the subset sums of elements.
//
// elements may be empty, in which case the only sum produced is 0. All
// elements must be ≥ 0; otherwise an error wrapping ErrNegativeElement is
// returned (NaN values are rejected with ErrIllegalArguments). New copies
// elements and does not modify the caller's slice.
//
// At most one configuration may be given.
func New[N Number](elements []N, cfg ...Config) (*Enumerator[N], error) {
	conf, err := configFrom(cfg)
	if err != nil {
		return nil, err
	}
	sorted := make([]N, len(elements))
	for i, x := range elements {
		if err := checkElement(x); err != nil {
			tracer().Errorf("subset sums: rejecting element #%d = %v", i, x)
			return nil, fmt.Errorf("%w: element #%d is %v", err, i, x)
		}
		sorted[i] = x
	}
	slices.Sort(sorted)
	tracer().Debugf("subset sums: enumerating %d elements", len(sorted))
	return newEnumerator(sorted, conf), nil
}

// NewAscending creates an enumerator for the subset sums of a sequence which
// is already sorted in non-decreasing order. src may be unbounded.
//
// Elements are pulled from src only when the enumeration needs them, which
// makes it possible to enumerate the smallest sums of inputs too large to be
// held in memory. If src yields a negative element or an element smaller than
// its predecessor, enumeration stops and Err reports ErrNegativeElement or
// ErrNotAscending, respectively.
//
// Clients which stop consuming sums before the enumerator is exhausted should
// call Stop to release src.
func NewAscending[N Number](src iter.Seq[N], cfg ...Config) *Enumerator[N] {
	conf, err := configFrom(cfg)
	e := newEnumerator[N](nil, conf)
	if err != nil {
		e.fail(err)
		return e
	}
	if src == nil {
		e.fail(fmt.Errorf("%w: source sequence is nil", ErrIllegalArguments))
		return e
	}
	next, stop := iter.Pull(src)
	e.source = &source[N]{next: next, stop: stop}
	tracer().Debugf("subset sums: enumerating ascending stream")
	return e
}

func newEnumerator[N Number](elements []N, cfg Config) *Enumerator[N] {
	e := &Enumerator[N]{
		elements: elements,
		frontier: frontier.New[N](len(elements) + 1),
		cfg:      cfg,
	}
	e.push(frontier.Entry[N]{}) // empty subset
	return e
}

// Sums returns the subset sums of elements as a single-use sequence.
// See New for the preconditions on elements.
func Sums[N Number](elements []N) (iter.Seq[N], error) {
	e, err := New(elements)
	if err != nil {
		return nil, err
	}
	return e.Range(), nil
}

// Next returns the next subset sum.
//
// If the enumeration is exhausted, stopped, or has failed, ok is false. Use
// Err to tell failure from exhaustion.
//
// If a sum larger than sum would not be representable in N, sum is still
// returned, but the enumeration stops afterwards with ErrOverflow. All sums
// returned are correct and in order.
func (e *Enumerator[N]) Next() (sum N, ok bool) {
	if e == nil || e.stopped || e.err != nil {
		return sum, false
	}
	top, ok := e.frontier.Peek()
	if !ok {
		e.release()
		return sum, false
	}
	var pushes int
	if e.source == nil {
		pushes = len(e.elements) - top.Index
	} else {
		e.pull(top.Index)
		if e.err != nil {
			return sum, false
		}
		if top.Index < len(e.elements) {
			pushes = 1
			if top.Index > 0 {
				pushes = 2
			}
		}
	}
	if limit := e.cfg.FrontierLimit; limit > 0 && e.frontier.Len()-1+pushes > limit {
		e.fail(fmt.Errorf("%w: %d entries needed, limit is %d", ErrFrontierLimit,
			e.frontier.Len()-1+pushes, limit))
		return sum, false
	}
	top, _ = e.frontier.Pop()
	if e.source == nil {
		e.extend(top)
	} else {
		e.succeed(top)
	}
	e.produced++
	return top.Sum, true
}

// Range returns the remaining sums as an iterator. Breaking out of a range
// loop leaves the enumerator at the position after the last value consumed.
func (e *Enumerator[N]) Range() iter.Seq[N] {
	return func(yield func(N) bool) {
		for {
			sum, ok := e.Next()
			if !ok || !yield(sum) {
				return
			}
		}
	}
}

// Err returns the error which stopped the enumeration, if any.
// Err is nil for an enumeration which has been exhausted normally.
func (e *Enumerator[N]) Err() error {
	if e == nil {
		return ErrIllegalArguments
	}
	return e.err
}

// Stop ends the enumeration and releases an input sequence given to
// NewAscending. Subsequent calls to Next report no more values.
func (e *Enumerator[N]) Stop() {
	if e == nil || e.stopped {
		return
	}
	e.stopped = true
	e.release()
	e.frontier.Reset()
	tracer().Debugf("subset sums: stopped after %d sums", e.produced)
}

// Stats reports the work done so far.
func (e *Enumerator[N]) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	return Stats{
		Produced:    e.produced,
		Pushed:      e.pushed,
		FrontierLen: e.frontier.Len(),
		FrontierMax: e.frontier.MaxLen(),
		Elements:    len(e.elements),
	}
}

// Elements returns a copy of the sorted input elements. For enumerators
// created by NewAscending this is the prefix of the input pulled so far.
func (e *Enumerator[N]) Elements() []N {
	if e == nil {
		return nil
	}
	return slices.Clone(e.elements)
}

// --- Frontier expansion ----------------------------------------------------

func (e *Enumerator[N]) push(entry frontier.Entry[N]) {
	e.frontier.Push(entry)
	e.pushed++
}

// extend pushes all single-element extensions of the subset of top, using
// elements at top.Index or later.
func (e *Enumerator[N]) extend(top frontier.Entry[N]) {
	for j := top.Index; j < len(e.elements); j++ {
		sum, ok := add(top.Sum, e.elements[j])
		if !ok {
			e.failOverflow(top.Sum, e.elements[j])
			return
		}
		e.push(frontier.Entry[N]{Sum: sum, Index: j + 1})
	}
}

// succeed pushes the successors of the subset S of top, with i = top.Index:
// S ∪ {i} and, if S is non-empty, S with its largest index i-1 replaced by i.
// Every non-empty subset has exactly one predecessor under these two moves.
func (e *Enumerator[N]) succeed(top frontier.Entry[N]) {
	i := top.Index
	if i >= len(e.elements) {
		return
	}
	x := e.elements[i]
	sum, ok := add(top.Sum, x)
	if !ok {
		e.failOverflow(top.Sum, x)
		return
	}
	e.push(frontier.Entry[N]{Sum: sum, Index: i + 1, Base: top.Sum})
	if i > 0 {
		// Base <= Sum, so this cannot overflow if the extension did not
		e.push(frontier.Entry[N]{Sum: top.Base + x, Index: i + 1, Base: top.Base})
	}
}

// pull makes element i available, if the source has one.
func (e *Enumerator[N]) pull(i int) {
	src := e.source
	assert(src != nil, "pull called for slice input")
	for !src.drained && len(e.elements) <= i {
		x, ok := src.next()
		if !ok {
			src.drained = true
			break
		}
		n := len(e.elements)
		if err := checkElement(x); err != nil {
			e.fail(fmt.Errorf("%w: element #%d is %v", err, n, x))
			return
		}
		if n > 0 && x < e.elements[n-1] {
			e.fail(fmt.Errorf("%w: element #%d = %v follows %v", ErrNotAscending,
				n, x, e.elements[n-1]))
			return
		}
		e.elements = append(e.elements, x)
	}
}

func (e *Enumerator[N]) failOverflow(sum, x N) {
	e.fail(fmt.Errorf("%w: %v + %v", ErrOverflow, sum, x))
}

func (e *Enumerator[N]) fail(err error) {
	tracer().Errorf("subset sums: %v", err)
	e.err = err
	e.release()
}

func (e *Enumerator[N]) release() {
	if e.source == nil || e.source.released {
		return
	}
	e.source.stop()
	e.source.released = true
	e.source.drained = true
}

func checkElement[N Number](x N) error {
	if x != x { // NaN
		return ErrIllegalArguments
	}
	if x < 0 {
		return ErrNegativeElement
	}
	return nil
}

// add returns a+b for b >= 0. ok is false if the sum wrapped around, which
// for non-negative b is the case exactly if it is smaller than a.
func add[N Number](a, b N) (sum N, ok bool) {
	sum = a + b
	return sum, sum >= a
}
