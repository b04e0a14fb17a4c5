/*
PURPOSE:
  Defines the Dataset type and random generation.
  A Dataset is the single input every search consumes.

REQUIREMENTS:
  User-specified:
  - Generate n unique random integers in [min, max], sorted ascending.
  - Reproducible runs via an explicit seed.

  Implementation-discovered:
  - Requesting more unique values than the range holds must be rejected
    up front; the draw loop would otherwise never terminate.
  - Values are confined to the int32 range (the file loader enforces the
    same), which is what lets the interpolation probe widen to int64
    safely.

ARCHITECTURE INTEGRATION:
  - Used by: internal/bench, internal/cli
  - Consumed read-only by: internal/search

ERROR HANDLING:
  - Explicit errors for impossible generation parameters.

IMPLEMENTATION RULES:
  - The sorted + duplicate-free invariant is established here and in the
    loader, never re-checked by the search algorithms.

USAGE:
  data, err := dataset.Generate(100000, 1, 10000000, 0)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/dataset/file.go - load/save of dataset files.

MAINTENANCE:
  - Update the bounds checks if 64-bit values are ever supported.
*/

package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// Dataset is an ascending, duplicate-free slice of integers. It is
// passed read-only into the search algorithms and replaced wholesale on
// regeneration or reload.
type Dataset []int

// Generate draws n unique random integers from [minVal, maxVal] and
// returns them sorted ascending. seed 0 means time-based seeding.
func Generate(n, minVal, maxVal int, seed uint64) (Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("dataset size must be positive, got %d", n)
	}
	if minVal > maxVal {
		return nil, fmt.Errorf("invalid value range [%d, %d]", minVal, maxVal)
	}
	if minVal < math.MinInt32 || maxVal > math.MaxInt32 {
		return nil, fmt.Errorf("value range [%d, %d] exceeds supported 32-bit width", minVal, maxVal)
	}
	span := int64(maxVal) - int64(minVal) + 1
	if int64(n) > span {
		return nil, fmt.Errorf("cannot draw %d unique values from [%d, %d]", n, minVal, maxVal)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	seen := make(map[int]struct{}, n)
	out := make(Dataset, 0, n)
	for len(out) < n {
		v := minVal + int(rng.Int64N(span))
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out, nil
}

// Contains reports whether v is present, using the sorted invariant.
func (d Dataset) Contains(v int) bool {
	_, ok := slices.BinarySearch(d, v)
	return ok
}
