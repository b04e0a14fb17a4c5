/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full benchmark suite in batch mode.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/bench.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or suite run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> bench.Run.

USAGE:
  searchbench run --targets 42,1337 --size 500000

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/probekit/searchbench/internal/bench"
	"github.com/probekit/searchbench/internal/config"
)

var (
	datasetFileOverride string
	sizeOverride        int
	outputDirOverride   string
	targetsOverride     []int
	seedOverride        uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long: `Executes the full benchmark suite over a sorted integer dataset.
The process follows a strict protocol:
1. Prepare: Loads the dataset from a file, or generates one.
2. Targets: Uses explicit targets, or samples guaranteed hits from the
   dataset plus guaranteed misses just outside its value range.
3. Benchmarking: Times jump search and interpolation search once per
   target and cross-checks that both agree.

Results are saved to CSV and JSON Lines, one row per timed search.`,
	Example: `  # Run with defaults (uses searchbench.yaml if present)
  searchbench run

  # Benchmark specific targets against a dataset file
  searchbench run --dataset-file data/numbers.txt --targets 42,1337

  # Reproducible generated run
  searchbench run --size 100000 --seed 7 -o ./results`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		if datasetFileOverride != "" {
			cfg.DatasetFile = datasetFileOverride
		}
		if sizeOverride > 0 {
			cfg.GenerateSize = sizeOverride
		}
		if outputDirOverride != "" {
			cfg.OutputDir = outputDirOverride
		}
		if len(targetsOverride) > 0 {
			cfg.Targets = targetsOverride
		}
		if seedOverride != 0 {
			cfg.Seed = seedOverride
		}

		// 3. Execution
		return bench.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&datasetFileOverride, "dataset-file", "f", "", "Load the dataset from this file instead of generating")
	runCmd.Flags().IntVar(&sizeOverride, "size", 0, "Generated dataset size (overrides config)")
	runCmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Output directory for results (CSV/JSONL)")
	runCmd.Flags().IntSliceVar(&targetsOverride, "targets", nil, "Comma-separated list of search targets (skips sampling)")
	runCmd.Flags().Uint64Var(&seedOverride, "seed", 0, "Seed for dataset generation and target sampling (0 = time-based)")
}
