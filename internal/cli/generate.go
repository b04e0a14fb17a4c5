/*
PURPOSE:
  Defines the 'generate' subcommand.
  Writes a random dataset file for later, repeatable runs.

REQUIREMENTS:
  User-specified:
  - Produce newline-delimited integer files the loader accepts.

  Implementation-discovered:
  - Useful for building fixed corpora (sparse, negative ranges, ...)
    without a separate script.

ARCHITECTURE INTEGRATION:
  - Calls: internal/dataset.Generate / Save

ERROR HANDLING:
  - Prints error if generation parameters are impossible.

IMPLEMENTATION RULES:
  - Simple output to a file; summary to the log.

USAGE:
  searchbench generate -o data/numbers.txt --size 100000

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/dataset/file.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/probekit/searchbench/internal/config"
	"github.com/probekit/searchbench/internal/dataset"
	"github.com/probekit/searchbench/internal/output"
)

var (
	genOut  string
	genSize int
	genMin  int
	genMax  int
	genSeed uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dataset file (one integer per line)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if genSize > 0 {
			cfg.GenerateSize = genSize
		}
		if cmd.Flags().Changed("min") {
			cfg.GenerateMin = genMin
		}
		if cmd.Flags().Changed("max") {
			cfg.GenerateMax = genMax
		}
		if genSeed != 0 {
			cfg.Seed = genSeed
		}

		data, err := dataset.Generate(cfg.GenerateSize, cfg.GenerateMin, cfg.GenerateMax, cfg.Seed)
		if err != nil {
			return err
		}
		if err := dataset.Save(data, genOut); err != nil {
			return err
		}

		output.Logger.Info("Dataset written",
			"file", genOut, "elements", len(data),
			"min", data[0], "max", data[len(data)-1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genOut, "out", "o", "dataset.txt", "Output file path")
	generateCmd.Flags().IntVar(&genSize, "size", 0, "Number of unique values (overrides config)")
	generateCmd.Flags().IntVar(&genMin, "min", 0, "Minimum value (overrides config)")
	generateCmd.Flags().IntVar(&genMax, "max", 0, "Maximum value (overrides config)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for reproducible generation (0 = time-based)")
}
