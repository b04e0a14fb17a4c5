/*
PURPOSE:
  High-level runner that orchestrates a benchmark suite.
  Prepares the dataset, then loops targets x algorithms and records
  every timed search.

REQUIREMENTS:
  User-specified:
  - Run both algorithms over every target.
  - Log results to CSV/JSONL.

  Implementation-discovered:
  - Both algorithms must agree on every target; a disagreement is a
    correctness bug worth shouting about, not just a data point.
  - Needs to report progress to CLI.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/dataset, internal/search, internal/output

ERROR HANDLING:
  - Dataset preparation failure aborts the run.
  - Writer errors are logged but the suite continues (resilience).

IMPLEMENTATION RULES:
  - Prepare dataset (load or generate).
  - Resolve targets (explicit or sampled hits + guaranteed misses).
  - For each target: measure every algorithm once, write, cross-check.

USAGE:
  bench.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/bench/bench.go

MAINTENANCE:
  - Update iteration logic if a third algorithm is ever added.
*/

package bench

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/probekit/searchbench/internal/config"
	"github.com/probekit/searchbench/internal/dataset"
	"github.com/probekit/searchbench/internal/model"
	"github.com/probekit/searchbench/internal/output"
	"github.com/probekit/searchbench/internal/search"
)

// Algorithms is the fixed set every suite run measures.
var Algorithms = []search.Algorithm{
	search.JumpSearch{},
	search.InterpolationSearch{},
}

// Run executes the full benchmark suite.
func Run(cfg *config.Config) error {
	// 1. Prepare Phase: dataset
	var data dataset.Dataset
	var err error
	if cfg.DatasetFile != "" {
		output.Logger.Info("Loading dataset", "file", cfg.DatasetFile)
		data, err = dataset.Load(cfg.DatasetFile)
	} else {
		output.Logger.Info("Generating dataset",
			"size", cfg.GenerateSize, "min", cfg.GenerateMin, "max", cfg.GenerateMax)
		data, err = dataset.Generate(cfg.GenerateSize, cfg.GenerateMin, cfg.GenerateMax, cfg.Seed)
	}
	if err != nil {
		return fmt.Errorf("failed to prepare dataset: %w", err)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// Setup Outputs
	csvPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := csvPath
	if ext := filepath.Ext(jsonPath); ext != "" {
		jsonPath = strings.TrimSuffix(jsonPath, ext)
	}
	jsonPath += ".jsonl"
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	// 2. Target Resolution
	targets := cfg.Targets
	if len(targets) == 0 {
		targets = PickTargets(data, cfg.TargetCount, cfg.MissTargets, cfg.Seed)
		output.Logger.Info("Sampled targets",
			"hits", cfg.TargetCount, "misses", cfg.MissTargets)
	}

	runID := uuid.New().String()
	output.Logger.Info("Starting benchmark run",
		"run_id", runID, "dataset_size", len(data), "targets", len(targets))

	// 3. Execution Phase
	for _, target := range targets {
		indexes := make(map[string]int, len(Algorithms))

		for _, alg := range Algorithms {
			s := Measure(alg, data, target)
			indexes[alg.Name()] = s.Index

			res := model.Result{
				RunID:       runID,
				Algorithm:   alg.Name(),
				Target:      target,
				Index:       s.Index,
				Found:       s.Found(),
				Duration:    s.Elapsed,
				DatasetSize: len(data),
				Timestamp:   time.Now(),
			}
			if !s.Found() {
				res.Closest = search.Closest(data, target)
			}

			output.Logger.Info("Search complete",
				"algorithm", alg.Name(),
				"target", target,
				"found", res.Found,
				"index", s.Index,
				"duration", s.Elapsed,
			)

			// Write Result
			if err := csvWriter.Write(res); err != nil {
				output.Logger.Error("Failed to write result to CSV", "error", err)
			}
			if err := jsonWriter.Write(res); err != nil {
				output.Logger.Error("Failed to write result to JSON", "error", err)
			}
		}

		// Cross-check: every algorithm must report the same index.
		first := indexes[Algorithms[0].Name()]
		for name, idx := range indexes {
			if idx != first {
				output.Logger.Error("Algorithms disagree",
					"target", target,
					"algorithm", name,
					"index", idx,
					"expected", first,
				)
			}
		}
	}

	output.Logger.Info("Benchmark run complete",
		"run_id", runID, "csv", csvPath, "jsonl", jsonPath)
	return nil
}

// PickTargets samples `hits` values from the dataset (guaranteed to be
// found) and appends `misses` values just outside its range (guaranteed
// not to be). seed 0 means time-based.
func PickTargets(data dataset.Dataset, hits, misses int, seed uint64) []int {
	if len(data) == 0 {
		return nil
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// Offset stream so targets differ from generation with the same seed.
	rng := rand.New(rand.NewPCG(seed, seed+1))

	targets := make([]int, 0, hits+misses)
	for i := 0; i < hits; i++ {
		targets = append(targets, data[rng.IntN(len(data))])
	}
	for i := 0; i < misses; i++ {
		// Alternate just above the max and just below the min.
		if i%2 == 0 {
			targets = append(targets, data[len(data)-1]+1+i/2)
		} else {
			targets = append(targets, data[0]-1-i/2)
		}
	}
	return targets
}
