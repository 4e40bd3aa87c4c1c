// Package heap implements a generic array-backed binary heap.
//
// The heap is ordered by a caller supplied comparator, so the same type serves
// as both a min-heap and a max-heap depending on the comparator's orientation.
package heap

import "iter"

// Compare orders two items. A negative result means a belongs above b in the
// heap, a positive result means b belongs above a, and zero means either may
// come first.
type Compare[T any] func(a, b T) int

// Heap is a binary heap stored as an implicit tree in a single slice.
//
// The item at index i has its children at 2i+1 and 2i+2. Every item compares
// less than or equal to both of its children, so the root is always the
// extreme element under the comparator. Ties are broken arbitrarily.
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	compare Compare[T]
	storage []T
}

// New creates a new heap ordered by compare, containing the initial items.
//
// The initial items are inserted one at a time with [Heap.Push].
func New[T any](compare Compare[T], initial ...T) *Heap[T] {
	h := &Heap[T]{
		compare: compare,
		storage: make([]T, 0, len(initial)),
	}

	for _, item := range initial {
		h.Push(item)
	}

	return h
}

// Push inserts an item and moves it up to its place in the heap.
//
// It returns the heap to allow chaining.
func (h *Heap[T]) Push(item T) *Heap[T] {
	var zero T

	// Grow by one slot; the item is only written once its final position is
	// known.
	h.storage = append(h.storage, zero)

	current := len(h.storage) - 1

	for current > 0 {
		up := parent(current)

		if h.compare(item, h.storage[up]) >= 0 {
			break
		}

		// Move the parent down into the hole.
		h.storage[current] = h.storage[up]
		current = up
	}

	h.storage[current] = item

	return h
}

// Pop removes and returns the root item.
//
// The boolean is false if the heap is empty, in which case the zero value is
// returned.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T

	if h.IsEmpty() {
		return zero, false
	}

	root := h.storage[0]

	// Take the last item out of the tree, and clear its slot so that the
	// backing array does not keep it alive.
	last := len(h.storage) - 1
	item := h.storage[last]
	h.storage[last] = zero
	h.storage = h.storage[:last]

	// The root was the only item.
	if h.IsEmpty() {
		return root, true
	}

	current := 0

	for {
		child := h.smallestChild(current)

		if child < 0 || h.compare(item, h.storage[child]) <= 0 {
			break
		}

		// Move the child up into the hole.
		h.storage[current] = h.storage[child]
		current = child
	}

	h.storage[current] = item

	return root, true
}

// Peek returns the root item without removing it.
//
// The boolean is false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T

		return zero, false
	}

	return h.storage[0], true
}

// Clear removes all items from the heap.
//
// It returns the heap to allow chaining.
func (h *Heap[T]) Clear() *Heap[T] {
	clear(h.storage)
	h.storage = h.storage[:0]

	return h
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.storage)
}

// IsEmpty returns whether the heap has no items.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.storage) == 0
}

// Drain returns an iterator that pops items from the heap in order.
//
// If iteration stops early, the items that were not yielded stay in the heap.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := h.Pop()
			if !ok {
				return
			}

			if !yield(item) {
				return
			}
		}
	}
}

// parent returns the index of the parent of the item at index i. The root has
// no parent, so i must be greater than zero.
func parent(i int) int {
	return (i - 1) / 2
}

// smallestChild returns the index of the child of i that belongs higher in
// the heap, or -1 if i is a leaf.
func (h *Heap[T]) smallestChild(i int) int {
	left := 2*i + 1
	right := left + 1

	if left >= len(h.storage) {
		return -1
	}

	// Only the left child exists.
	if right >= len(h.storage) {
		return left
	}

	if h.compare(h.storage[left], h.storage[right]) < 0 {
		return left
	}

	return right
}

// valid reports whether every item compares less than or equal to its
// children.
func (h *Heap[T]) valid() bool {
	for i := 1; i < len(h.storage); i++ {
		if h.compare(h.storage[i], h.storage[parent(i)]) < 0 {
			return false
		}
	}

	return true
}
