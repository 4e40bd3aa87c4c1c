package heap

// Parent reexports the internal [parent] function.
func Parent(i int) int {
	return parent(i)
}

// SmallestChild reexports the internal [smallestChild] method.
func (h *Heap[T]) SmallestChild(i int) int {
	return h.smallestChild(i)
}

// Valid reexports the internal [valid] method.
func (h *Heap[T]) Valid() bool {
	return h.valid()
}
