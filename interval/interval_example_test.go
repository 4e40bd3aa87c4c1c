package interval_test

import (
	"cmp"
	"fmt"

	"github.com/crystalix007/disjoint-intervals/interval"
)

func Example() {
	disjoiner := interval.MustNew(interval.OrderedConfig[int](interval.Sum[int]))

	disjoint := disjoiner.Disjoin([]interval.ValuedInterval[int, int]{
		{Start: 0, End: 10, Value: 1},
		{Start: 3, End: 10, Value: 2},
		{Start: 6, End: 10, Value: 3},
		{Start: 10, End: 12, Value: 6},
	})

	for _, i := range disjoint {
		fmt.Printf("[%d, %d) = %d\n", i.Start, i.End, i.Value)
	}

	// Output:
	// [0, 3) = 1
	// [3, 6) = 3
	// [6, 12) = 6
}

func ExampleNeverEqual() {
	disjoiner := interval.MustNew(interval.Config[int, int]{
		Compare:     cmp.Compare[int],
		MergeValues: interval.Max[int],
		Equals:      interval.NeverEqual[int],
	})

	disjoint := disjoiner.Disjoin([]interval.ValuedInterval[int, int]{
		{Start: 0, End: 5, Value: 1},
		{Start: 5, End: 10, Value: 1},
	})

	fmt.Println(len(disjoint))

	// Output:
	// 2
}
