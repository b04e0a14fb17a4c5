/*
PURPOSE:
  Finds the dataset values nearest a target that was not found, to give
  the user context ("did you mean one of these?") after a miss.

REQUIREMENTS:
  User-specified:
  - Up to 10 values, ordered by absolute distance to the target, ties
    broken by value.
  - No full scan of the dataset.

  Implementation-discovered:
  - A binary search gives the insertion point; the nearest candidates
    are always a contiguous window around it, so collecting exactly
    min(10, n) indices from the clamped window is sufficient.

ARCHITECTURE INTEGRATION:
  - Called by: internal/bench (miss reporting), internal/cli (menu)
  - Uses: sort.SearchInts for the insertion point.

ERROR HANDLING:
  - Empty dataset returns nil.

IMPLEMENTATION RULES:
  - Window invariant: exactly min(10, n) candidates, drawn from valid
    indices, left-biased around the insertion point and shifted (never
    shrunk) at either boundary.

USAGE:
  nearest := search.Closest(data, 42)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/search/search.go

MAINTENANCE:
  - None.
*/

package search

import "sort"

// maxClosest caps how many nearest values a miss report carries.
const maxClosest = 10

// Closest returns up to maxClosest values from the sorted,
// duplicate-free slice data, ordered by (|value - target|, value)
// ascending. O(log n) for the lookup plus a sort of the small window.
func Closest(data []int, target int) []int {
	n := len(data)
	if n == 0 {
		return nil
	}

	k := min(maxClosest, n)

	// Smallest index whose value is >= target.
	pos := sort.SearchInts(data, target)

	// Left-biased window around the insertion point, shifted to stay
	// within bounds without shrinking below k.
	start := pos - maxClosest/2
	if start > n-k {
		start = n - k
	}
	if start < 0 {
		start = 0
	}

	out := make([]int, k)
	copy(out, data[start:start+k])

	sort.Slice(out, func(i, j int) bool {
		di := absDist(out[i], target)
		dj := absDist(out[j], target)
		if di == dj {
			return out[i] < out[j]
		}
		return di < dj
	})
	return out
}

// absDist is |a-b| computed in 64 bits so extreme targets cannot wrap.
func absDist(a, b int) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}
