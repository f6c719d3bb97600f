package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/five82/dexter/internal/logtail"
)

// LogsOptions select which log entries Logs prints.
type LogsOptions struct {
	Lines   int  // tail length; <= 0 reads the whole file
	AllRuns bool // include entries from earlier invocations
	Color   bool
}

// Logs prints the tail of the configured log file. By default only the most
// recent earlier run is shown; the current process's own entries are skipped.
func (e *Env) Logs(w io.Writer, opts LogsOptions) error {
	if e.Config.LogFile == "" {
		return fmt.Errorf("no log file configured")
	}
	lines, err := logtail.Read(e.Config.LogFile, opts.Lines)
	if err != nil {
		return err
	}
	entries := logtail.ParseLines(lines)
	if e.RunID != "" {
		entries = slices.DeleteFunc(entries, func(entry logtail.Entry) bool {
			return entry.Run == e.RunID
		})
	}
	if !opts.AllRuns {
		entries = logtail.FilterRun(entries, logtail.LastRun(entries))
	}
	for _, entry := range entries {
		line := entry.Format()
		if opts.Color {
			line = entry.Colorize()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
