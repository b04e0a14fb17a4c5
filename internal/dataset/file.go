/*
PURPOSE:
  Loads datasets from newline-delimited text files and saves generated
  datasets back out, so benchmark runs are repeatable.

REQUIREMENTS:
  User-specified:
  - One integer per line. Bad lines are skipped with a warning, never
    fatal. Zero valid lines is a failure.
  - Loaded data is sorted ascending with duplicates removed.

  Implementation-discovered:
  - Per-line outcomes are explicit values (parsed or skip-with-reason)
    rather than error traps, so the loader just aggregates.
  - Values outside the int32 range count as skips, mirroring the width
    the rest of the system assumes.

ARCHITECTURE INTEGRATION:
  - Called by: internal/bench (prepare phase), internal/cli
  - Uses: internal/output.Logger for skip warnings.

ERROR HANDLING:
  - Open failure: returned as-is, dataset untouched.
  - No valid lines: ErrNoValidData, dataset left empty.
  - Skips: warned and counted, processing continues.

IMPLEMENTATION RULES:
  - Parse is reader-based; Load only adds the file handling. Keep it
    that way for testability.

USAGE:
  data, err := dataset.Load("data/numbers.txt")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/dataset/dataset.go

MAINTENANCE:
  - Update parseLine if a second file format is ever accepted.
*/

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/probekit/searchbench/internal/output"
)

// ErrNoValidData signals that a dataset file contained no parseable
// integers at all.
var ErrNoValidData = errors.New("no valid integers found")

// lineResult is the outcome of parsing one line of a dataset file.
// Exactly one of value / skip is meaningful.
type lineResult struct {
	value int
	skip  string // non-empty = reason the line was skipped
}

func parseLine(line string) lineResult {
	s := strings.TrimSpace(line)
	if s == "" {
		return lineResult{skip: "blank line"}
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return lineResult{skip: "value outside 32-bit range"}
		}
		return lineResult{skip: "not a valid integer"}
	}
	return lineResult{value: int(v)}
}

// Parse reads newline-delimited integers from r, skipping bad lines
// with a warning. It returns the sorted, deduplicated dataset and the
// number of skipped lines. name is used only in diagnostics.
func Parse(r io.Reader, name string) (Dataset, int, error) {
	var values Dataset
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		res := parseLine(scanner.Text())
		if res.skip != "" {
			skipped++
			output.Logger.Warn("Skipping dataset line",
				"source", name, "line", lineNo, "reason", res.skip)
			continue
		}
		values = append(values, res.value)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("reading %s: %w", name, err)
	}

	if len(values) == 0 {
		return nil, skipped, fmt.Errorf("%w in %s", ErrNoValidData, name)
	}

	slices.Sort(values)
	values = slices.Compact(values)
	return values, skipped, nil
}

// Load reads a dataset file from disk. On any failure the caller's
// dataset is untouched (nothing is mutated, a fresh slice is returned).
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	data, skipped, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	output.Logger.Info("Dataset loaded",
		"file", path, "elements", len(data), "skipped_lines", skipped)
	return data, nil
}

// Save writes the dataset to path, one integer per line, overwriting
// any existing file.
func Save(d Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, v := range d {
		if _, err := fmt.Fprintln(w, v); err != nil {
			f.Close()
			return fmt.Errorf("write dataset file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush dataset file %s: %w", path, err)
	}
	return f.Close()
}
