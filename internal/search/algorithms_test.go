package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cross-validation: both algorithms must return the same index as the
// stdlib binary search for any sorted, duplicate-free input.
func TestAlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	algorithms := []Algorithm{JumpSearch{}, InterpolationSearch{}}

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(200)
		seen := make(map[int]struct{}, n)
		data := make([]int, 0, n)
		for len(data) < n {
			v := -1000 + rng.IntN(2001)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			data = append(data, v)
		}
		slices.Sort(data)

		targets := slices.Clone(data)
		for i := 0; i < 20; i++ {
			targets = append(targets, -1100+rng.IntN(2201))
		}

		for _, target := range targets {
			want := NotFound
			if idx, ok := slices.BinarySearch(data, target); ok {
				want = idx
			}
			for _, alg := range algorithms {
				got := alg.Search(data, target)
				require.Equal(t, want, got,
					"%s disagrees on target %d in %v", alg.Name(), target, data)
			}
		}
	}
}
