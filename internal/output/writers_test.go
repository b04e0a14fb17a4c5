package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probekit/searchbench/internal/model"
)

func sampleResult() model.Result {
	return model.Result{
		RunID:       "run-1",
		Algorithm:   "jump",
		Target:      25,
		Index:       -1,
		Found:       false,
		Duration:    1500 * time.Nanosecond,
		DatasetSize: 3,
		Timestamp:   time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Closest:     []int{20, 30, 10},
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleResult()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "run_id", records[0][0])
	row := records[1]
	assert.Equal(t, "run-1", row[0])
	assert.Equal(t, "jump", row[1])
	assert.Equal(t, "25", row[2])
	assert.Equal(t, "false", row[3])
	assert.Equal(t, "-1", row[4])
	assert.Equal(t, "1.500", row[5]) // microseconds
	assert.Equal(t, "20 30 10", row[8])
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleResult()))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var res model.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, sampleResult(), res)
}
