package frontier

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
)

// ErrCorrupted signals that the heap order of a queue has been violated.
var ErrCorrupted = errors.New("frontier: heap order violated")

// Entry is a frontier entry for a partially determined subset.
//
// Sum is the sum of the subset's elements. Index is the smallest element index
// not yet considered for inclusion, i.e. one past the largest index of the
// subset (0 for the empty subset). Base is the sum of the subset without its
// largest element; it is only maintained by enumerators which expand entries
// into successors instead of all extensions.
type Entry[N cmp.Ordered] struct {
	Sum   N
	Index int
	Base  N
}

// entries implements heap.Interface.
type entries[N cmp.Ordered] []Entry[N]

func (h entries[N]) Len() int           { return len(h) }
func (h entries[N]) Less(i, j int) bool { return h[i].Sum < h[j].Sum }
func (h entries[N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entries[N]) Push(x any) {
	*h = append(*h, x.(Entry[N]))
}

func (h *entries[N]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Queue is a min-priority queue of frontier entries, ordered by Entry.Sum.
//
// The zero value is an empty queue ready to use.
type Queue[N cmp.Ordered] struct {
	items  entries[N]
	maxLen int
}

// New creates an empty queue with room for capacity entries.
func New[N cmp.Ordered](capacity int) *Queue[N] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[N]{items: make(entries[N], 0, capacity)}
}

// Len returns the number of entries in the queue.
func (q *Queue[N]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// MaxLen returns the largest number of entries the queue has held since
// creation or the last Reset.
func (q *Queue[N]) MaxLen() int {
	if q == nil {
		return 0
	}
	return q.maxLen
}

// Push inserts an entry.
func (q *Queue[N]) Push(e Entry[N]) {
	assert(q != nil, "frontier.Push called on nil queue")
	heap.Push(&q.items, e)
	if len(q.items) > q.maxLen {
		q.maxLen = len(q.items)
	}
}

// Pop removes and returns the entry with the smallest sum.
// If the queue is empty, ok is false.
func (q *Queue[N]) Pop() (e Entry[N], ok bool) {
	if q == nil || len(q.items) == 0 {
		return e, false
	}
	return heap.Pop(&q.items).(Entry[N]), true
}

// Peek returns the entry with the smallest sum without removing it.
// If the queue is empty, ok is false.
func (q *Queue[N]) Peek() (e Entry[N], ok bool) {
	if q == nil || len(q.items) == 0 {
		return e, false
	}
	return q.items[0], true
}

// Reset drops all entries and clears the high-water mark.
func (q *Queue[N]) Reset() {
	if q == nil {
		return
	}
	clear(q.items)
	q.items = q.items[:0]
	q.maxLen = 0
}

// check validates the heap order of the queue.
func (q *Queue[N]) check() error {
	if q == nil {
		return nil
	}
	for i := 1; i < len(q.items); i++ {
		parent := (i - 1) / 2
		if q.items[i].Sum < q.items[parent].Sum {
			tracer().Errorf("frontier: entry #%d is smaller than its parent #%d", i, parent)
			return fmt.Errorf("%w: entry #%d < parent #%d", ErrCorrupted, i, parent)
		}
	}
	return nil
}
