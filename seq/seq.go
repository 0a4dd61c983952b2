/*
Package seq provides small combinators over Go range-over-func sequences.

The combinators are meant to be layered on top of an enumeration of subset
sums, which is itself not concerned with truncation or pairing:

	sums, _ := subsums.Sums([]int{1, 2, 3})
	for s := range seq.TakeWhile(sums, func(s int) bool { return s <= 4 }) {
		…
	}

All combinators are lazy: they pull from their input only as far as their
consumer asks for values.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seq

import (
	"cmp"
	"iter"
)

// Integer is the set of integer types the generators accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Take yields the first n values of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range s {
			if !yield(v) {
				return
			}
			if count++; count >= n {
				return
			}
		}
	}
}

// TakeWhile yields values of s as long as pred holds, stopping at the first
// value for which it does not.
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Skip drops the first n values of s and yields the rest.
func Skip[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Zip pairs the values of a and b positionally. It ends as soon as either
// sequence ends.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for x := range a {
			y, ok := next()
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}

// Pairwise yields each pair of adjacent values of s.
func Pairwise[T any](s iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		first := true
		for v := range s {
			if !first && !yield(prev, v) {
				return
			}
			prev, first = v, false
		}
	}
}

// Enumerate adds 0-indexing to a single value sequence.
func Enumerate[T any](s iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var idx int
		for v := range s {
			if !yield(idx, v) {
				return
			}
			idx++
		}
	}
}

// Concat yields the values of all sequences, one after the other.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect drains s into a slice.
func Collect[T any](s iter.Seq[T]) []T {
	var vs []T
	for v := range s {
		vs = append(vs, v)
	}
	return vs
}

// Count drains s and returns the number of values.
func Count[T any](s iter.Seq[T]) int {
	var n int
	for range s {
		n++
	}
	return n
}

// Max drains s and returns its largest value. ok is false for an empty
// sequence.
func Max[T cmp.Ordered](s iter.Seq[T]) (largest T, ok bool) {
	for v := range s {
		if !ok || v > largest {
			largest, ok = v, true
		}
	}
	return largest, ok
}

// IntRange yields the integers from ≤ i < to.
func IntRange[N Integer](from, to N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Naturals yields from, from+1, from+2, … without end.
func Naturals[N Integer](from N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := from; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
