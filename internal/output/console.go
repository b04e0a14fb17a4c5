package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/probekit/searchbench/internal/model"
)

// consoleScheme defines consistent colors for the different parts of a
// search report.
// Green: hits
// Red: misses
// Yellow: timings
// Cyan: labels and values
type consoleScheme struct {
	hit   *color.Color
	miss  *color.Color
	time  *color.Color
	label *color.Color
}

// Console renders human-facing search reports to a writer. Color is
// decided once at construction (callers gate it on TTY detection).
type Console struct {
	w      io.Writer
	scheme *consoleScheme
}

// NewConsole creates a Console. When colored is false all output is
// plain text, suitable for pipes and tests.
func NewConsole(w io.Writer, colored bool) *Console {
	scheme := &consoleScheme{
		hit:   color.New(color.FgGreen),
		miss:  color.New(color.FgRed),
		time:  color.New(color.FgYellow),
		label: color.New(color.FgCyan),
	}
	if !colored {
		scheme.hit.DisableColor()
		scheme.miss.DisableColor()
		scheme.time.DisableColor()
		scheme.label.DisableColor()
	}
	return &Console{w: w, scheme: scheme}
}

// ReportSearch prints the outcome of one timed search, including the
// nearest dataset values after a miss.
func (c *Console) ReportSearch(r model.Result) {
	if r.Found {
		fmt.Fprintf(c.w, "%s Value %d found at index %d.\n",
			c.scheme.hit.Sprint("✓"), r.Target, r.Index)
	} else {
		fmt.Fprintf(c.w, "%s Value %d not found.\n",
			c.scheme.miss.Sprint("✗"), r.Target)
		if len(r.Closest) > 0 {
			closest := make([]string, len(r.Closest))
			for i, v := range r.Closest {
				closest[i] = fmt.Sprintf("%d", v)
			}
			fmt.Fprintf(c.w, "  %s %s\n",
				c.scheme.label.Sprint("Closest values:"),
				strings.Join(closest, " "))
		}
	}
	fmt.Fprintf(c.w, "  %s %s\n",
		c.scheme.label.Sprintf("%s search time:", r.Algorithm),
		c.scheme.time.Sprint(formatDuration(r.Duration)))
}

// ReportDataset prints a one-line summary of the active dataset.
func (c *Console) ReportDataset(size int, origin string) {
	fmt.Fprintf(c.w, "%s Dataset ready: %d unique sorted elements (%s).\n",
		c.scheme.hit.Sprint("✓"), size, origin)
}

// formatDuration renders sub-millisecond durations in microseconds so
// fast searches do not all display as "0ms".
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fµs", float64(d.Nanoseconds())/1000.0)
	}
	return fmt.Sprintf("%.3fms", float64(d.Nanoseconds())/1e6)
}
