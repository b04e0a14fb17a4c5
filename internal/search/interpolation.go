/*
PURPOSE:
  Implements Interpolation Search over a sorted, duplicate-free integer
  slice. Estimates the probe position from the value distribution, which
  beats binary search on uniformly distributed data.

REQUIREMENTS:
  User-specified:
  - Same contract as Jump Search: index of target, or -1 if absent.
  - Must never divide by zero or index outside the slice.

  Implementation-discovered:
  - The single-element branch must run BEFORE the probe formula. With a
    duplicate-free dataset, data[low] == data[high] implies low == high,
    so handling low == high first is what keeps the divisor non-zero.
  - The probe product needs 64-bit arithmetic: values are confined to
    the int32 range by the dataset loader, so (high-low)*(target-low)
    fits an int64 but not necessarily an int32.

ARCHITECTURE INTEGRATION:
  - Implements: search.Algorithm
  - Called by: internal/bench, internal/cli (menu)

ERROR HANDLING:
  - A probe landing outside [low, high] (degenerate interpolation on
    non-uniform data) is reported as not found, not as a fault.

IMPLEMENTATION RULES:
  - Keep the low == high check ahead of the formula. Reordering it
    reintroduces the division-by-zero case.
  - Multiply before dividing; dividing first loses the fraction and
    degrades the probe to data[low]'s neighborhood.

USAGE:
  idx := search.InterpolationSearch{}.Search(data, 42)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/search/search.go - Algorithm interface and NotFound.

MAINTENANCE:
  - Revisit the widening if the loader ever accepts 64-bit values.
*/

package search

// InterpolationSearch probes at positions estimated by linear
// interpolation between the bounds of the remaining range.
type InterpolationSearch struct{}

// Name implements Algorithm.
func (InterpolationSearch) Name() string { return "interpolation" }

// Search implements Algorithm.
func (InterpolationSearch) Search(data []int, target int) int {
	low := 0
	high := len(data) - 1

	for low <= high && target >= data[low] && target <= data[high] {
		// Single remaining element. Must precede the probe formula:
		// this is the only case where data[high] == data[low].
		if low == high {
			if data[low] == target {
				return low
			}
			return NotFound
		}

		// 64-bit intermediate so the product cannot overflow for
		// int32-range values.
		pos64 := int64(low) + (int64(high-low)*int64(target-data[low]))/int64(data[high]-data[low])
		if pos64 < int64(low) || pos64 > int64(high) {
			// Degenerate interpolation; the target cannot be here.
			return NotFound
		}
		pos := int(pos64)

		switch {
		case data[pos] == target:
			return pos
		case data[pos] < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}
	return NotFound
}
