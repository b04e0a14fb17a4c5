package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosest(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		assert.Empty(t, Closest(nil, 5))
	})

	t.Run("small dataset returns everything by distance", func(t *testing.T) {
		// Ties broken by value: |3-4| == |5-4|, so 3 before 5.
		got := Closest([]int{1, 3, 5}, 4)
		assert.Equal(t, []int{3, 5, 1}, got)
	})

	t.Run("exact window around the insertion point", func(t *testing.T) {
		data := make([]int, 20)
		for i := range data {
			data[i] = i * 2 // 0, 2, ..., 38
		}
		got := Closest(data, 9)
		assert.Equal(t, []int{8, 10, 6, 12, 4, 14, 2, 16, 0, 18}, got)
	})

	t.Run("target below the minimum clamps to the front", func(t *testing.T) {
		data := make([]int, 20)
		for i := range data {
			data[i] = i * 2
		}
		got := Closest(data, -100)
		assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, got)
	})

	t.Run("target above the maximum clamps to the back", func(t *testing.T) {
		data := make([]int, 20)
		for i := range data {
			data[i] = i * 2
		}
		got := Closest(data, 1000)
		assert.Equal(t, []int{38, 36, 34, 32, 30, 28, 26, 24, 22, 20}, got)
	})

	t.Run("properties over random datasets", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 9))
		for trial := 0; trial < 30; trial++ {
			n := 1 + rng.IntN(50)
			seen := make(map[int]struct{}, n)
			data := make([]int, 0, n)
			for len(data) < n {
				v := rng.IntN(500)
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				data = append(data, v)
			}
			slices.Sort(data)
			target := -50 + rng.IntN(600)

			got := Closest(data, target)

			require.Len(t, got, min(10, n))
			for i, v := range got {
				_, ok := slices.BinarySearch(data, v)
				require.True(t, ok, "value %d not in dataset", v)
				if i > 0 {
					require.LessOrEqual(t,
						absDist(got[i-1], target), absDist(v, target),
						"distances must be non-decreasing")
				}
			}
			// No value repeated beyond what the dataset contains.
			dedup := slices.Clone(got)
			slices.Sort(dedup)
			require.Equal(t, len(dedup), len(slices.Compact(dedup)))
		}
	})
}
