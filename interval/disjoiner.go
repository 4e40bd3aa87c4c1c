package interval

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/crystalix007/disjoint-intervals/heap"
)

// Disjoiner converts overlapping valued intervals into disjoint ones.
//
// A Disjoiner holds no state between calls, but it is not meant to be shared
// between goroutines unless its configuration functions are safe to call
// concurrently.
type Disjoiner[Key, Value any] struct {
	config Config[Key, Value]
}

// New creates a new disjoiner using the given configuration.
func New[Key, Value any](config Config[Key, Value]) (*Disjoiner[Key, Value], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid disjoiner config")
	}

	return &Disjoiner[Key, Value]{
		config: config,
	}, nil
}

// MustNew is like [New], but panics if the configuration is invalid.
func MustNew[Key, Value any](config Config[Key, Value]) *Disjoiner[Key, Value] {
	d, err := New(config)
	if err != nil {
		panic(err)
	}

	return d
}

// Disjoin merges a set of valued intervals into disjoint intervals.
//
// Every point covered by the input is covered by exactly one output interval,
// whose value is the merge of the values of all input intervals covering that
// point. The output is sorted by start, and touching output intervals with
// equal values are spliced together.
//
// Input intervals that are empty (Start >= End) are ignored. The input slice
// is not modified.
func (d *Disjoiner[Key, Value]) Disjoin(items []ValuedInterval[Key, Value]) []ValuedInterval[Key, Value] {
	queue := heap.New(func(a, b ValuedInterval[Key, Value]) int {
		return d.config.Compare(a.Start, b.Start)
	})

	for _, item := range items {
		if d.isEmpty(item) {
			continue
		}

		queue.Push(item)
	}

	// The active interval is the earliest one that may still overlap with
	// something in the queue.
	active, ok := queue.Pop()
	if !ok {
		return nil
	}

	var disjoint []ValuedInterval[Key, Value]

	for {
		next, ok := queue.Pop()
		if !ok {
			break
		}

		fragments := d.merge(active, next)

		// Finalize fragments from the earliest onwards, while nothing left in
		// the queue can overlap them. At least one fragment is kept to become
		// the new active interval.
		finalized := 0

		for finalized < len(fragments)-1 {
			top, ok := queue.Peek()

			if ok && d.config.Compare(fragments[finalized].End, top.Start) > 0 {
				break
			}

			disjoint = append(disjoint, fragments[finalized])
			finalized++
		}

		active = fragments[finalized]

		// The remaining fragments may still overlap later intervals.
		for _, fragment := range fragments[finalized+1:] {
			queue.Push(fragment)
		}
	}

	disjoint = append(disjoint, active)

	return d.spliceAll(disjoint)
}

// merge merges two intervals, where first does not start after last.
//
// It returns the non-empty fragments covering both intervals, sorted by start.
// If the intervals do not overlap, they are returned unchanged.
func (d *Disjoiner[Key, Value]) merge(first, last ValuedInterval[Key, Value]) []ValuedInterval[Key, Value] {
	if d.config.Compare(first.End, last.Start) <= 0 {
		return []ValuedInterval[Key, Value]{first, last}
	}

	merged := d.config.MergeValues(first.Value, last.Value)

	fragments := make([]ValuedInterval[Key, Value], 0, 3)

	// The part of first before last begins.
	fragments = append(fragments, ValuedInterval[Key, Value]{
		Start: first.Start,
		End:   last.Start,
		Value: first.Value,
	})

	if d.config.Compare(first.End, last.End) >= 0 {
		// first contains last.
		fragments = append(fragments,
			ValuedInterval[Key, Value]{
				Start: last.Start,
				End:   last.End,
				Value: merged,
			},
			ValuedInterval[Key, Value]{
				Start: last.End,
				End:   first.End,
				Value: first.Value,
			},
		)
	} else {
		fragments = append(fragments,
			ValuedInterval[Key, Value]{
				Start: last.Start,
				End:   first.End,
				Value: merged,
			},
			ValuedInterval[Key, Value]{
				Start: first.End,
				End:   last.End,
				Value: last.Value,
			},
		)
	}

	return slices.DeleteFunc(fragments, d.isEmpty)
}

// spliceAll splices every run of touching intervals with equal values in a
// sorted list of disjoint intervals.
func (d *Disjoiner[Key, Value]) spliceAll(disjoint []ValuedInterval[Key, Value]) []ValuedInterval[Key, Value] {
	output := make([]ValuedInterval[Key, Value], 0, len(disjoint))
	current := disjoint[0]

	for _, next := range disjoint[1:] {
		if d.isSplicable(current, next) {
			current = d.splice(current, next)

			continue
		}

		output = append(output, current)
		current = next
	}

	return append(output, current)
}

// isSplicable returns whether last starts where first ends, with an equal
// value.
func (d *Disjoiner[Key, Value]) isSplicable(first, last ValuedInterval[Key, Value]) bool {
	return d.config.Compare(first.End, last.Start) == 0 &&
		d.config.Equals(first.Value, last.Value)
}

// splice joins two splicable intervals into one.
func (d *Disjoiner[Key, Value]) splice(first, last ValuedInterval[Key, Value]) ValuedInterval[Key, Value] {
	return ValuedInterval[Key, Value]{
		Start: first.Start,
		End:   last.End,
		Value: first.Value,
	}
}

// isEmpty returns whether the interval covers no keys.
func (d *Disjoiner[Key, Value]) isEmpty(item ValuedInterval[Key, Value]) bool {
	return d.config.Compare(item.Start, item.End) >= 0
}
