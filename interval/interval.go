package interval

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrMissingCompare is returned when a [Config] has no Compare function.
	ErrMissingCompare = errors.New("missing key comparison function")

	// ErrMissingMergeValues is returned when a [Config] has no MergeValues
	// function.
	ErrMissingMergeValues = errors.New("missing value merge function")

	// ErrMissingEquals is returned when a [Config] has no Equals function.
	ErrMissingEquals = errors.New("missing value equality function")
)

// ValuedInterval represents the half-open interval [Start, End) carrying a
// Value.
//
// Intervals are treated as values: the disjoiner never modifies an interval
// it was given, and always builds new ones for its output.
type ValuedInterval[Key, Value any] struct {
	Start Key
	End   Key
	Value Value
}

// Config holds the functions that a [Disjoiner] uses to order keys and to
// combine values.
//
// The disjoiner trusts these functions. Breaking the contracts below gives
// inconsistent output rather than an error.
type Config[Key, Value any] struct {
	// Compare must define a total order on keys. It returns a negative number
	// if a is before b, zero if they are equal, and a positive number if a is
	// after b.
	Compare func(a, b Key) int

	// MergeValues combines the values of two overlapping intervals. It must be
	// associative and commutative, since overlapping regions are merged in
	// no particular order.
	MergeValues func(a, b Value) Value

	// Equals decides whether two touching output intervals carry the same
	// value and should be spliced into one. It must be an equivalence
	// relation. A function that always returns false disables splicing.
	Equals func(a, b Value) bool
}

// Validate returns an error if any of the configuration functions is missing.
func (c Config[Key, Value]) Validate() error {
	switch {
	case c.Compare == nil:
		return errors.WithStack(ErrMissingCompare)
	case c.MergeValues == nil:
		return errors.WithStack(ErrMissingMergeValues)
	case c.Equals == nil:
		return errors.WithStack(ErrMissingEquals)
	}

	return nil
}

// OrderedConfig returns a configuration for naturally ordered keys and
// comparable values, which merges values with merge.
func OrderedConfig[Key cmp.Ordered, Value comparable](merge func(a, b Value) Value) Config[Key, Value] {
	return Config[Key, Value]{
		Compare:     cmp.Compare[Key],
		MergeValues: merge,
		Equals:      Equal[Value],
	}
}

// Sum merges two numbers by adding them.
func Sum[Value constraints.Integer | constraints.Float](a, b Value) Value {
	return a + b
}

// Max merges two values by keeping the larger one.
func Max[Value cmp.Ordered](a, b Value) Value {
	return max(a, b)
}

// Min merges two values by keeping the smaller one.
func Min[Value cmp.Ordered](a, b Value) Value {
	return min(a, b)
}

// Equal reports whether two comparable values are equal.
func Equal[Value comparable](a, b Value) bool {
	return a == b
}

// NeverEqual reports that no two values are equal, which disables splicing.
func NeverEqual[Value any](Value, Value) bool {
	return false
}
