/*
PURPOSE:
  The timing harness. Wraps exactly one search invocation with
  monotonic wall-clock measurement.

REQUIREMENTS:
  User-specified:
  - One invocation per call. No retries, no sampling, no averaging.
  - Must not mutate the dataset or the target.

  Implementation-discovered:
  - time.Now()/time.Since carry Go's monotonic clock reading, which is
    exactly the high-resolution measurement needed here.

ARCHITECTURE INTEGRATION:
  - Called by: internal/bench/runner.go, internal/cli (menu)
  - Accepts any search.Algorithm; stays agnostic of which one it times.

ERROR HANDLING:
  - None. A miss is a valid measured outcome, not an error.

IMPLEMENTATION RULES:
  - Nothing between the clock reads except the search call itself.

USAGE:
  sample := bench.Measure(search.JumpSearch{}, data, 42)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/search/search.go

MAINTENANCE:
  - None expected.
*/

package bench

import (
	"time"

	"github.com/probekit/searchbench/internal/search"
)

// Sample pairs one search invocation's result with its elapsed
// wall-clock time. Ephemeral: produced and consumed per interaction.
type Sample struct {
	Index   int
	Elapsed time.Duration
}

// Found reports whether the measured search located the target.
func (s Sample) Found() bool { return s.Index != search.NotFound }

// Measure invokes alg exactly once against data and returns the result
// with the elapsed duration.
func Measure(alg search.Algorithm, data []int, target int) Sample {
	start := time.Now()
	idx := alg.Search(data, target)
	return Sample{Index: idx, Elapsed: time.Since(start)}
}
