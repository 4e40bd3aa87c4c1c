package heap_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/disjoint-intervals/heap"
)

func FuzzHeap(f *testing.F) {
	f.Add([]byte{7, 1, 3, 5, 5, 9, 1, 2, 0}, uint8(3))
	f.Add([]byte{}, uint8(0))

	f.Fuzz(func(t *testing.T, items []byte, popEvery uint8) {
		h := heap.New(cmp.Compare[byte])

		// Interleave pops with pushes, tracking the expected contents.
		var expected []byte

		for i, item := range items {
			h.Push(item)
			expected = append(expected, item)

			if popEvery > 0 && (i+1)%int(popEvery) == 0 {
				popped, ok := h.Pop()
				require.True(t, ok)

				smallest := slices.Min(expected)
				require.Equal(t, smallest, popped)

				expected = slices.Delete(expected, slices.Index(expected, smallest), slices.Index(expected, smallest)+1)
			}

			require.True(t, h.Valid())
			require.Equal(t, len(expected), h.Len())
		}

		slices.Sort(expected)

		drained := slices.Collect(h.Drain())

		if len(expected) == 0 {
			require.Empty(t, drained)
		} else {
			require.Equal(t, expected, drained)
		}
	})
}
