package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/logging"
)

const defaultLogLines = 50

var (
	logsLines int
	logsPath  bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the log written while a control surface was open",
	Long: `Show the tail of focusmode.log.

Commands that draw a terminal UI (sim, --surface) log to this file instead
of stderr. It is rotated by size; see logging.max_size_mb and
logging.max_backups.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogLines, "number of lines to show")
	logsCmd.Flags().BoolVar(&logsPath, "path", false, "print the log file path only")
}

func runLogs(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	path := logging.LogFilePath(a.Config.Logging.LogDir)
	if logsPath {
		fmt.Println(path)
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Println(a.Theme.Subtle.Render("no log file yet: " + path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	lines, err := tailLines(f, logsLines)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	ring := make([]string, 0, n)
	start := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[start] = scanner.Text()
		start = (start + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return append(ring[start:], ring[:start]...), nil
}
