package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probekit/searchbench/internal/output"
)

func TestMain(m *testing.M) {
	// Skip warnings are expected noise in these tests.
	output.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	t.Run("skips invalid lines and removes duplicates", func(t *testing.T) {
		in := strings.NewReader("5\nnot_a_number\n3\n5\n1\n")
		data, skipped, err := Parse(in, "test")
		require.NoError(t, err)
		assert.Equal(t, Dataset{1, 3, 5}, data)
		assert.Equal(t, 1, skipped)
	})

	t.Run("out-of-range values are skipped", func(t *testing.T) {
		in := strings.NewReader("3000000000\n7\n-3000000000\n")
		data, skipped, err := Parse(in, "test")
		require.NoError(t, err)
		assert.Equal(t, Dataset{7}, data)
		assert.Equal(t, 2, skipped)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		in := strings.NewReader("\n2\n\n1\n")
		data, skipped, err := Parse(in, "test")
		require.NoError(t, err)
		assert.Equal(t, Dataset{1, 2}, data)
		assert.Equal(t, 2, skipped)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		in := strings.NewReader("  9\t\n4 \n")
		data, _, err := Parse(in, "test")
		require.NoError(t, err)
		assert.Equal(t, Dataset{4, 9}, data)
	})

	t.Run("no valid lines is an error", func(t *testing.T) {
		in := strings.NewReader("alpha\nbeta\n")
		data, _, err := Parse(in, "test")
		assert.ErrorIs(t, err, ErrNoValidData)
		assert.Empty(t, data)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "numbers.txt")
		require.NoError(t, os.WriteFile(path, []byte("30\n10\n20\n10\n"), 0644))

		data, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Dataset{10, 20, 30}, data)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("sorted unique values within bounds", func(t *testing.T) {
		data, err := Generate(1000, -500, 5000, 1)
		require.NoError(t, err)
		require.Len(t, data, 1000)
		assert.True(t, slices.IsSorted(data))
		assert.Equal(t, len(data), len(slices.Compact(slices.Clone(data))))
		assert.GreaterOrEqual(t, data[0], -500)
		assert.LessOrEqual(t, data[len(data)-1], 5000)
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a, err := Generate(100, 1, 10000, 42)
		require.NoError(t, err)
		b, err := Generate(100, 1, 10000, 42)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("exhausts a tight range exactly", func(t *testing.T) {
		data, err := Generate(5, 1, 5, 9)
		require.NoError(t, err)
		assert.Equal(t, Dataset{1, 2, 3, 4, 5}, data)
	})

	t.Run("impossible parameters", func(t *testing.T) {
		_, err := Generate(10, 1, 5, 0)
		assert.Error(t, err)
		_, err = Generate(0, 1, 5, 0)
		assert.Error(t, err)
		_, err = Generate(3, 9, 5, 0)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.txt")
	orig := Dataset{-7, 0, 3, 99}

	require.NoError(t, Save(orig, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestContains(t *testing.T) {
	d := Dataset{1, 3, 5}
	assert.True(t, d.Contains(3))
	assert.False(t, d.Contains(4))
}
