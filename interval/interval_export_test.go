package interval

// Merge reexports the internal [merge] method.
func (d *Disjoiner[Key, Value]) Merge(first, last ValuedInterval[Key, Value]) []ValuedInterval[Key, Value] {
	return d.merge(first, last)
}

// IsSplicable reexports the internal [isSplicable] method.
func (d *Disjoiner[Key, Value]) IsSplicable(first, last ValuedInterval[Key, Value]) bool {
	return d.isSplicable(first, last)
}

// Splice reexports the internal [splice] method.
func (d *Disjoiner[Key, Value]) Splice(first, last ValuedInterval[Key, Value]) ValuedInterval[Key, Value] {
	return d.splice(first, last)
}
