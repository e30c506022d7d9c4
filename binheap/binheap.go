// Package binheap provides an array-based binary max-heap ordered by a
// caller-supplied comparator. It is self-contained and shares no state
// with the other containers in this module.
//
// A Heap is not safe for concurrent use.
package binheap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is carried by the panic raised when Top or Pop is called
// on an empty heap. It is exported so callers can recognize the violation
// in recover handlers.
var ErrEmptyHeap = errors.New("heap holds no elements")

// Less reports whether a orders strictly before b. The heap keeps its
// comparator-greatest element on top.
type Less[T any] func(a, b T) bool

// Heap is a binary max-heap over a slice. Children of the element at
// index i sit at 2i+1 and 2i+2. Duplicates are allowed. The zero value is
// not usable; construct with New, NewWithCapacity, NewFromSlice or
// NewOrdered.
type Heap[T any] struct {
	less Less[T]
	data []T
}

// New returns an empty heap ordered by less.
func New[T any](less Less[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewWithCapacity returns an empty heap with room for capacity elements
// before the backing array first grows.
func NewWithCapacity[T any](less Less[T], capacity int) *Heap[T] {
	return &Heap[T]{less: less, data: make([]T, 0, capacity)}
}

// NewFromSlice returns a heap that adopts values as its backing storage
// and orders it in place, O(n). The slice belongs to the heap afterward.
func NewFromSlice[T any](less Less[T], values []T) *Heap[T] {
	h := &Heap[T]{less: less, data: values}
	h.heapify()
	return h
}

// NewOrdered returns an empty heap for a naturally ordered element type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New[T](cmp.Less[T])
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool {
	return len(h.data) == 0
}

// Top returns the greatest element without removing it.
// It panics with ErrEmptyHeap when the heap is empty.
func (h *Heap[T]) Top() T {
	if len(h.data) == 0 {
		panic(ErrEmptyHeap)
	}
	return h.data[0]
}

// Push adds v. Storage grows by amortized doubling through append.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the greatest element.
// It panics with ErrEmptyHeap when the heap is empty.
func (h *Heap[T]) Pop() T {
	if len(h.data) == 0 {
		panic(ErrEmptyHeap)
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero // drop the reference so the collector can reclaim it
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top
}

// Clone returns a deep copy sharing no storage with the receiver.
func (h *Heap[T]) Clone() *Heap[T] {
	out := &Heap[T]{less: h.less, data: make([]T, len(h.data))}
	copy(out.data, h.data)
	return out
}

// Move transfers the elements to a new heap in O(1). The receiver is left
// valid and empty and keeps its comparator.
func (h *Heap[T]) Move() *Heap[T] {
	out := &Heap[T]{less: h.less, data: h.data}
	h.data = nil
	return out
}

// Clear removes all elements, keeping the backing array for reuse.
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.data {
		h.data[i] = zero
	}
	h.data = h.data[:0]
}

// heapify orders the whole backing slice bottom-up, sifting down every
// interior node from the last parent to the root.
func (h *Heap[T]) heapify() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftUp moves the element at i toward the root until its parent is no
// smaller.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[parent], h.data[i]) {
			return
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

// siftDown moves the element at i toward the leaves, swapping with the
// greater child while one exceeds it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && h.less(h.data[child], h.data[right]) {
			child = right
		}
		if !h.less(h.data[i], h.data[child]) {
			return
		}
		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
}
