/*
PURPOSE:
  Implements Jump Search over a sorted, duplicate-free integer slice.
  Coarse block hops followed by a linear refinement within one block.

REQUIREMENTS:
  User-specified:
  - Return the index of the target, or -1 if absent.
  - O(sqrt(n)) comparisons, no allocation, no mutation of the input.

  Implementation-discovered:
  - Block size floor(sqrt(n)) is the classic optimum.
  - The block-end probe must clamp to the slice length to stay in bounds
    when the last block is short.

ARCHITECTURE INTEGRATION:
  - Implements: search.Algorithm
  - Called by: internal/bench, internal/cli (menu)

ERROR HANDLING:
  - None. Degenerate inputs (empty slice, target outside the value
    range) are defined not-found outcomes, never faults.

IMPLEMENTATION RULES:
  - Empty slice returns NotFound before any index math.
  - The block walk must bail out once the block pointer passes the end.

USAGE:
  idx := search.JumpSearch{}.Search(data, 42)

SELF-HEALING INSTRUCTIONS:
  - If an out-of-bounds panic ever appears here, check the min() clamp
    on the block-end probe first.

RELATED FILES:
  - internal/search/search.go - Algorithm interface and NotFound.

MAINTENANCE:
  - None expected; the algorithm is frozen.
*/

package search

import "math"

// JumpSearch searches in O(sqrt(n)) by hopping over fixed-size blocks.
type JumpSearch struct{}

// Name implements Algorithm.
func (JumpSearch) Name() string { return "jump" }

// Search implements Algorithm.
func (JumpSearch) Search(data []int, target int) int {
	n := len(data)
	if n == 0 {
		return NotFound
	}

	block := int(math.Sqrt(float64(n)))

	// Hop blocks while the last element of the current block is still
	// below the target.
	prev := 0
	step := block
	for prev < n && data[min(step, n)-1] < target {
		prev = step
		step += block
		if prev >= n {
			// Target is larger than everything in the slice.
			return NotFound
		}
	}

	// Linear refinement from the start of the located block.
	for prev < n && data[prev] < target {
		prev++
	}

	if prev < n && data[prev] == target {
		return prev
	}
	return NotFound
}
