package bench

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probekit/searchbench/internal/config"
	"github.com/probekit/searchbench/internal/model"
	"github.com/probekit/searchbench/internal/output"
)

func TestMain(m *testing.M) {
	output.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.GenerateSize = 200
	cfg.GenerateMin = 1
	cfg.GenerateMax = 10000
	cfg.Seed = 17
	cfg.TargetCount = 6
	cfg.MissTargets = 2
	cfg.OutputDir = dir
	cfg.OutputFile = "results.csv"

	require.NoError(t, Run(cfg))

	wantRows := (cfg.TargetCount + cfg.MissTargets) * len(Algorithms)

	t.Run("csv has one row per timed search", func(t *testing.T) {
		f, err := os.Open(filepath.Join(dir, "results.csv"))
		require.NoError(t, err)
		defer f.Close()

		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, wantRows+1) // header included
		assert.Equal(t, "run_id", records[0][0])
		assert.Equal(t, "algorithm", records[0][1])
	})

	t.Run("jsonl rows are well-formed and agree", func(t *testing.T) {
		f, err := os.Open(filepath.Join(dir, "results.jsonl"))
		require.NoError(t, err)
		defer f.Close()

		byTarget := make(map[int][]model.Result)
		scanner := bufio.NewScanner(f)
		rows := 0
		for scanner.Scan() {
			var res model.Result
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &res))
			rows++

			assert.NotEmpty(t, res.RunID)
			assert.Equal(t, cfg.GenerateSize, res.DatasetSize)
			if !res.Found {
				assert.Equal(t, -1, res.Index)
				assert.NotEmpty(t, res.Closest, "miss should carry closest values")
			}
			byTarget[res.Target] = append(byTarget[res.Target], res)
		}
		require.NoError(t, scanner.Err())
		require.Equal(t, wantRows, rows)

		// Cross-validation: both algorithms agree per target. Sampled
		// hit targets may repeat, so group sizes are a multiple of the
		// algorithm count rather than exactly it.
		for target, results := range byTarget {
			require.Zero(t, len(results)%len(Algorithms))
			for _, res := range results[1:] {
				assert.Equal(t, results[0].Index, res.Index,
					"algorithms disagree on target %d", target)
			}
		}
	})

	t.Run("explicit targets are used verbatim", func(t *testing.T) {
		dir2 := t.TempDir()
		cfg2 := config.DefaultConfig()
		cfg2.GenerateSize = 50
		cfg2.GenerateMax = 1000
		cfg2.Seed = 3
		cfg2.Targets = []int{1, 2, 3}
		cfg2.OutputDir = dir2
		cfg2.OutputFile = "r.csv"

		require.NoError(t, Run(cfg2))

		f, err := os.Open(filepath.Join(dir2, "r.csv"))
		require.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, len(cfg2.Targets)*len(Algorithms)+1)
	})
}

func TestRunBadDataset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DatasetFile = filepath.Join(t.TempDir(), "missing.txt")
	cfg.OutputDir = t.TempDir()

	err := Run(cfg)
	assert.Error(t, err)
}
