/*
PURPOSE:
  Defines the core data structures used throughout searchbench.
  These models represent one timed search and its outcome.

REQUIREMENTS:
  User-specified:
  - Record algorithm, target, found index, elapsed duration.
  - Track which suite run produced the row.

  Implementation-discovered:
  - Need JSON tags for the JSONL output.
  - Closest values only make sense on a miss; omit otherwise.

ARCHITECTURE INTEGRATION:
  - Used by: internal/bench, internal/output, internal/cli
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Time and time.Duration for high precision.

USAGE:
  res := model.Result{Algorithm: "jump", Target: 42, ...}

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add field and update the CSV writer.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"time"
)

// Result represents the outcome of a single timed search.
type Result struct {
	RunID       string        `json:"run_id"`
	Algorithm   string        `json:"algorithm"`
	Target      int           `json:"target"`
	Index       int           `json:"index"` // -1 when not found
	Found       bool          `json:"found"`
	Duration    time.Duration `json:"duration"`
	DatasetSize int           `json:"dataset_size"`
	Timestamp   time.Time     `json:"timestamp"`

	// Closest holds the nearest dataset values when the target was not
	// found, ordered by distance.
	Closest []int `json:"closest,omitempty"`

	Error string `json:"error,omitempty"` // If the run failed
}
