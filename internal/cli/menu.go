/*
PURPOSE:
  Defines the 'menu' subcommand: the interactive mode.
  A numbered menu loop for loading/generating a dataset and timing
  individual searches against it.

REQUIREMENTS:
  User-specified:
  - Menu options: load from file, generate, jump search, interpolation
    search, compare both, exit.
  - Refuse to search when no dataset is loaded.
  - Re-prompt on invalid menu choices and non-integer targets.

  Implementation-discovered:
  - Input goes through a MenuReader interface so tests can script a
    whole session.
  - The dataset is owned by the menu session value, not a package
    global; it is replaced wholesale on load/generate.

ARCHITECTURE INTEGRATION:
  - Calls: internal/dataset, internal/bench.Measure, internal/search
  - Uses: internal/output.Console for result display.

ERROR HANDLING:
  - Load failures are reported and leave the current dataset untouched.
  - EOF on input ends the session cleanly.

IMPLEMENTATION RULES:
  - One invocation per search; the menu never re-times silently.

USAGE:
  searchbench menu

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/output/console.go

MAINTENANCE:
  - Keep menu numbering stable; scripts may drive it.
*/

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/probekit/searchbench/internal/bench"
	"github.com/probekit/searchbench/internal/config"
	"github.com/probekit/searchbench/internal/dataset"
	"github.com/probekit/searchbench/internal/model"
	"github.com/probekit/searchbench/internal/output"
	"github.com/probekit/searchbench/internal/search"
)

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultMenuReader wraps bufio.Reader
type DefaultMenuReader struct {
	reader *bufio.Reader
}

func (d *DefaultMenuReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu for timing comparisons",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		reader := &DefaultMenuReader{reader: bufio.NewReader(os.Stdin)}
		colored := isatty.IsTerminal(os.Stdout.Fd())
		return RunMenu(cfg, reader, os.Stdout, colored)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// menuSession owns the dataset for the duration of the loop.
type menuSession struct {
	cfg     *config.Config
	reader  MenuReader
	w       io.Writer
	console *output.Console
	data    dataset.Dataset
}

// RunMenu drives the interactive loop against the given reader/writer.
// Exported with injectable I/O so tests can script full sessions.
func RunMenu(cfg *config.Config, reader MenuReader, w io.Writer, colored bool) error {
	s := &menuSession{
		cfg:     cfg,
		reader:  reader,
		w:       w,
		console: output.NewConsole(w, colored),
	}
	return s.loop()
}

func (s *menuSession) loop() error {
	for {
		s.printMenu()

		choice, err := s.readLine()
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		var handlerErr error
		switch strings.ToLower(choice) {
		case "1":
			handlerErr = s.loadDataset()
		case "2":
			s.generateDataset()
		case "3":
			handlerErr = s.timedSearch(search.JumpSearch{})
		case "4":
			handlerErr = s.timedSearch(search.InterpolationSearch{})
		case "5":
			handlerErr = s.compareSearch()
		case "6", "q", "quit", "exit":
			fmt.Fprintln(s.w, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.w, "Invalid choice. Please enter a number between 1 and 6.")
		}

		if handlerErr != nil {
			if isEOF(handlerErr) {
				return nil
			}
			return handlerErr
		}
	}
}

func (s *menuSession) printMenu() {
	bold := color.New(color.Bold)

	status := "no dataset loaded"
	if len(s.data) > 0 {
		status = fmt.Sprintf("%d elements loaded", len(s.data))
	}

	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, strings.Repeat("-", 49))
	bold.Fprintln(s.w, "|     Search Algorithm Performance Study       |")
	fmt.Fprintln(s.w, strings.Repeat("-", 49))
	fmt.Fprintln(s.w, "| 1. Load Dataset from File                     |")
	fmt.Fprintln(s.w, "| 2. Generate Random Dataset                    |")
	fmt.Fprintln(s.w, "| 3. Search (Jump Search)                       |")
	fmt.Fprintln(s.w, "| 4. Search (Interpolation Search)              |")
	fmt.Fprintln(s.w, "| 5. Compare Both Algorithms                    |")
	fmt.Fprintln(s.w, "| 6. Exit                                       |")
	fmt.Fprintln(s.w, strings.Repeat("-", 49))
	fmt.Fprintf(s.w, "(%s)\n", status)
	fmt.Fprint(s.w, "> Enter choice: ")
}

// readLine reads one trimmed input line.
func (s *menuSession) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *menuSession) loadDataset() error {
	fmt.Fprint(s.w, "> Enter dataset file path: ")
	path, err := s.readLine()
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(s.w, "No file path given.")
		return nil
	}

	// Current dataset stays intact on any load failure.
	data, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(s.w, "Could not load dataset: %v\n", err)
		return nil
	}
	s.data = data
	s.console.ReportDataset(len(data), "loaded from "+path)
	return nil
}

func (s *menuSession) generateDataset() {
	data, err := dataset.Generate(
		s.cfg.GenerateSize, s.cfg.GenerateMin, s.cfg.GenerateMax, s.cfg.Seed)
	if err != nil {
		// Only reachable with a broken config; report and keep going.
		fmt.Fprintf(s.w, "Could not generate dataset: %v\n", err)
		return
	}
	s.data = data
	s.console.ReportDataset(len(data), "generated")
}

// promptTarget re-prompts until the user enters a valid integer.
func (s *menuSession) promptTarget() (int, error) {
	for {
		fmt.Fprint(s.w, "> Enter value to search: ")
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			fmt.Fprintln(s.w, "Invalid input. Please enter a valid integer.")
			continue
		}
		return int(v), nil
	}
}

func (s *menuSession) timedSearch(alg search.Algorithm) error {
	if len(s.data) == 0 {
		fmt.Fprintln(s.w, "No dataset loaded! Please load or generate a dataset first.")
		return nil
	}
	target, err := s.promptTarget()
	if err != nil {
		return err
	}
	s.console.ReportSearch(s.measure(alg, target))
	return nil
}

func (s *menuSession) compareSearch() error {
	if len(s.data) == 0 {
		fmt.Fprintln(s.w, "No dataset loaded! Please load or generate a dataset first.")
		return nil
	}
	target, err := s.promptTarget()
	if err != nil {
		return err
	}

	indexes := make(map[string]int, len(bench.Algorithms))
	for _, alg := range bench.Algorithms {
		res := s.measure(alg, target)
		indexes[alg.Name()] = res.Index
		s.console.ReportSearch(res)
	}

	first := indexes[bench.Algorithms[0].Name()]
	for name, idx := range indexes {
		if idx != first {
			color.New(color.FgRed).Fprintf(s.w,
				"Algorithms disagree on %d: %s returned %d, expected %d\n",
				target, name, idx, first)
		}
	}
	return nil
}

// measure runs one timed search and packages it for display.
func (s *menuSession) measure(alg search.Algorithm, target int) model.Result {
	sample := bench.Measure(alg, s.data, target)
	res := model.Result{
		Algorithm:   alg.Name(),
		Target:      target,
		Index:       sample.Index,
		Found:       sample.Found(),
		Duration:    sample.Elapsed,
		DatasetSize: len(s.data),
		Timestamp:   time.Now(),
	}
	if !res.Found {
		res.Closest = search.Closest(s.data, target)
	}
	return res
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || strings.Contains(err.Error(), "EOF")
}
