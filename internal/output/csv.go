/*
PURPOSE:
  Writes benchmark results to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV, one row per timed search.
  - Keep file handle open for flushing.

  Implementation-discovered:
  - Overwrite on each suite run; the run ID column keeps rows
    attributable if files are concatenated later.

ARCHITECTURE INTEGRATION:
  - Called by: internal/bench
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected.

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/probekit/searchbench/internal/model"
)

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	header := []string{
		"run_id", "algorithm", "target", "found", "index",
		"duration_us", "dataset_size", "timestamp", "closest", "error",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single result to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Result) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	closest := make([]string, len(r.Closest))
	for i, v := range r.Closest {
		closest[i] = strconv.Itoa(v)
	}

	record := []string{
		r.RunID,
		r.Algorithm,
		strconv.Itoa(r.Target),
		strconv.FormatBool(r.Found),
		strconv.Itoa(r.Index),
		fmt.Sprintf("%.3f", float64(r.Duration.Nanoseconds())/1000.0),
		strconv.Itoa(r.DatasetSize),
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		strings.Join(closest, " "),
		r.Error,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
